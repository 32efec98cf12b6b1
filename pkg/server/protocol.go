package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/getmockd/awsmock/pkg/comprehend"
	"github.com/getmockd/awsmock/pkg/tagging"
)

// targetPrefix is the service/version prefix in the X-Amz-Target header.
const targetPrefix = "Comprehend_20171127."

// contentTypeAmzJSON is the content type of AWS JSON 1.1 responses.
const contentTypeAmzJSON = "application/x-amz-json-1.1"

// accountHeader overrides the configured mock account id per request, for
// tests that exercise multiple accounts against one server.
const accountHeader = "X-Awsmock-Account-Id"

// Request shapes. Field names follow the AWS API verbatim so the JSON
// decoder maps them without translation.

type createEntityRecognizerInput struct {
	RecognizerName     string              `json:"RecognizerName"`
	VersionName        string              `json:"VersionName"`
	DataAccessRoleArn  string              `json:"DataAccessRoleArn"`
	Tags               []tagging.Tag       `json:"Tags"`
	InputDataConfig    map[string]any      `json:"InputDataConfig"`
	ClientRequestToken string              `json:"ClientRequestToken"`
	LanguageCode       string              `json:"LanguageCode"`
	VolumeKmsKeyId     string              `json:"VolumeKmsKeyId"`
	VpcConfig          map[string][]string `json:"VpcConfig"`
	ModelKmsKeyId      string              `json:"ModelKmsKeyId"`
	ModelPolicy        string              `json:"ModelPolicy"`
}

type entityRecognizerArnInput struct {
	EntityRecognizerArn string `json:"EntityRecognizerArn"`
}

type listEntityRecognizersInput struct {
	Filter comprehend.Filter `json:"Filter"`
	// MaxResults and NextToken are accepted but ignored: pagination is not
	// implemented and the full matching set is always returned.
	MaxResults int    `json:"MaxResults"`
	NextToken  string `json:"NextToken"`
}

type tagResourceInput struct {
	ResourceArn string        `json:"ResourceArn"`
	Tags        []tagging.Tag `json:"Tags"`
}

type untagResourceInput struct {
	ResourceArn string   `json:"ResourceArn"`
	TagKeys     []string `json:"TagKeys"`
}

type listTagsForResourceInput struct {
	ResourceArn string `json:"ResourceArn"`
}

// awsError is the JSON 1.1 error envelope.
type awsError struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}

// writeAmzJSON writes a response body in the AWS JSON content type. A nil
// body still produces "{}" — AWS JSON operations always return an object.
func writeAmzJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeAmzJSON)
	w.WriteHeader(status)
	if body == nil {
		body = struct{}{}
	}
	_ = json.NewEncoder(w).Encode(body)
}

// writeAWSError writes the AWS error shape for the given exception type.
func writeAWSError(w http.ResponseWriter, status int, errType, message string) {
	writeAmzJSON(w, status, awsError{Type: errType, Message: message})
}

// regionFromRequest extracts the region from the SigV4 Authorization header
// credential scope ("Credential=<key>/<date>/<region>/<service>/aws4_request").
// Requests without a parseable scope fall back to the given default.
func regionFromRequest(r *http.Request, fallback string) string {
	auth := r.Header.Get("Authorization")
	idx := strings.Index(auth, "Credential=")
	if idx < 0 {
		return fallback
	}
	scope := auth[idx+len("Credential="):]
	if end := strings.IndexAny(scope, ", "); end >= 0 {
		scope = scope[:end]
	}
	parts := strings.Split(scope, "/")
	if len(parts) < 5 || parts[2] == "" {
		return fallback
	}
	return parts[2]
}
