package comprehend

import (
	"fmt"
)

// Recognizer status values. Other statuses exist in the real API
// (SUBMITTED, DELETING, IN_ERROR, TRAINED_WITH_WARNING) but are never
// produced by the mock.
const (
	StatusTrained       = "TRAINED"
	StatusTraining      = "TRAINING"
	StatusStopRequested = "STOP_REQUESTED"
)

// EntityRecognizer is a single recognizer resource. The ARN is derived at
// construction and never changes; it is the registry key. All other fields
// are caller-supplied and echoed back unchanged.
type EntityRecognizer struct {
	Name              string
	ARN               string
	LanguageCode      string
	InputDataConfig   map[string]any
	DataAccessRoleARN string
	VersionName       string
	VolumeKMSKeyID    string
	VPCConfig         map[string][]string
	ModelKMSKeyID     string
	ModelPolicy       string
	Status            string
}

// CreateParams carries the caller-supplied fields for a new recognizer.
type CreateParams struct {
	RecognizerName    string
	VersionName       string
	DataAccessRoleARN string
	InputDataConfig   map[string]any
	LanguageCode      string
	VolumeKMSKeyID    string
	VPCConfig         map[string][]string
	ModelKMSKeyID     string
	ModelPolicy       string

	// ClientRequestToken is accepted for API-shape compatibility but not
	// honored: repeated calls with the same token are not deduplicated.
	ClientRequestToken string
}

// NewEntityRecognizer builds a recognizer for the given partition. No actual
// training happens, so the recognizer starts out TRAINED.
func NewEntityRecognizer(region, accountID string, params CreateParams) *EntityRecognizer {
	arn := fmt.Sprintf("arn:aws:comprehend:%s:%s:entity-recognizer/%s",
		region, accountID, params.RecognizerName)
	if params.VersionName != "" {
		arn += "/version/" + params.VersionName
	}

	return &EntityRecognizer{
		Name:              params.RecognizerName,
		ARN:               arn,
		LanguageCode:      params.LanguageCode,
		InputDataConfig:   params.InputDataConfig,
		DataAccessRoleARN: params.DataAccessRoleARN,
		VersionName:       params.VersionName,
		VolumeKMSKeyID:    params.VolumeKMSKeyID,
		VPCConfig:         params.VPCConfig,
		ModelKMSKeyID:     params.ModelKMSKeyID,
		ModelPolicy:       params.ModelPolicy,
		Status:            StatusTrained,
	}
}

// ToOutput returns the wire-facing representation with the field names the
// dispatch layer forwards verbatim to its response encoder.
func (r *EntityRecognizer) ToOutput() map[string]any {
	return map[string]any{
		"EntityRecognizerArn": r.ARN,
		"LanguageCode":        r.LanguageCode,
		"Status":              r.Status,
		"InputDataConfig":     r.InputDataConfig,
		"DataAccessRoleArn":   r.DataAccessRoleARN,
		"VersionName":         r.VersionName,
		"VolumeKmsKeyId":      r.VolumeKMSKeyID,
		"VpcConfig":           r.VPCConfig,
		"ModelKmsKeyId":       r.ModelKMSKeyID,
		"ModelPolicy":         r.ModelPolicy,
	}
}
