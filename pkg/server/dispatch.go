package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/getmockd/awsmock/pkg/comprehend"
)

// handleDispatch routes POST / by X-Amz-Target to the backend operation.
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("x-amzn-RequestId", requestID)

	target := r.Header.Get("X-Amz-Target")
	operation := strings.TrimPrefix(target, targetPrefix)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.finish(w, r, requestID, operation, http.StatusBadRequest,
			&awsError{Type: "SerializationException", Message: "unable to read request body"})
		return
	}

	if target == "" || operation == target {
		s.finish(w, r, requestID, operation, http.StatusBadRequest,
			&awsError{Type: "UnknownOperationException", Message: fmt.Sprintf("unknown target %q", target)})
		return
	}

	region := regionFromRequest(r, s.cfg.DefaultRegion)
	accountID := r.Header.Get(accountHeader)
	if accountID == "" {
		accountID = s.cfg.DefaultAccountID
	}
	backend := s.registry.Get(region, accountID)

	result, opErr := s.dispatch(backend, operation, body)
	if opErr != nil {
		var apiErr comprehend.APIError
		if errors.As(opErr, &apiErr) {
			s.finish(w, r, requestID, operation, apiErr.StatusCode(),
				&awsError{Type: apiErr.ErrorCode(), Message: apiErr.Message()})
			return
		}
		s.finish(w, r, requestID, operation, http.StatusBadRequest,
			&awsError{Type: "SerializationException", Message: opErr.Error()})
		return
	}

	s.writeResult(w, r, requestID, operation, result)
}

// dispatch invokes one backend operation. A nil result with nil error means
// an empty response object.
func (s *Server) dispatch(b *comprehend.Backend, operation string, body []byte) (any, error) {
	switch operation {
	case "CreateEntityRecognizer":
		var in createEntityRecognizerInput
		if err := unmarshal(body, &in); err != nil {
			return nil, err
		}
		arn := b.CreateEntityRecognizer(comprehend.CreateParams{
			RecognizerName:     in.RecognizerName,
			VersionName:        in.VersionName,
			DataAccessRoleARN:  in.DataAccessRoleArn,
			InputDataConfig:    in.InputDataConfig,
			LanguageCode:       in.LanguageCode,
			VolumeKMSKeyID:     in.VolumeKmsKeyId,
			VPCConfig:          in.VpcConfig,
			ModelKMSKeyID:      in.ModelKmsKeyId,
			ModelPolicy:        in.ModelPolicy,
			ClientRequestToken: in.ClientRequestToken,
		}, in.Tags)
		return map[string]any{"EntityRecognizerArn": arn}, nil

	case "DescribeEntityRecognizer":
		var in entityRecognizerArnInput
		if err := unmarshal(body, &in); err != nil {
			return nil, err
		}
		recognizer, err := b.DescribeEntityRecognizer(in.EntityRecognizerArn)
		if err != nil {
			return nil, err
		}
		return map[string]any{"EntityRecognizerProperties": recognizer.ToOutput()}, nil

	case "ListEntityRecognizers":
		var in listEntityRecognizersInput
		if err := unmarshal(body, &in); err != nil {
			return nil, err
		}
		recognizers := b.ListEntityRecognizers(in.Filter)
		props := make([]map[string]any, 0, len(recognizers))
		for _, recognizer := range recognizers {
			props = append(props, recognizer.ToOutput())
		}
		return map[string]any{"EntityRecognizerPropertiesList": props}, nil

	case "StopTrainingEntityRecognizer":
		var in entityRecognizerArnInput
		if err := unmarshal(body, &in); err != nil {
			return nil, err
		}
		if err := b.StopTrainingEntityRecognizer(in.EntityRecognizerArn); err != nil {
			return nil, err
		}
		return nil, nil

	case "DeleteEntityRecognizer":
		var in entityRecognizerArnInput
		if err := unmarshal(body, &in); err != nil {
			return nil, err
		}
		b.DeleteEntityRecognizer(in.EntityRecognizerArn)
		return nil, nil

	case "TagResource":
		var in tagResourceInput
		if err := unmarshal(body, &in); err != nil {
			return nil, err
		}
		b.TagResource(in.ResourceArn, in.Tags)
		return nil, nil

	case "UntagResource":
		var in untagResourceInput
		if err := unmarshal(body, &in); err != nil {
			return nil, err
		}
		b.UntagResource(in.ResourceArn, in.TagKeys)
		return nil, nil

	case "ListTagsForResource":
		var in listTagsForResourceInput
		if err := unmarshal(body, &in); err != nil {
			return nil, err
		}
		return map[string]any{
			"ResourceArn": in.ResourceArn,
			"Tags":        b.ListTagsForResource(in.ResourceArn),
		}, nil
	}

	return nil, &unknownOperationError{operation: operation}
}

// unknownOperationError maps unrecognized targets onto the AWS error shape.
type unknownOperationError struct {
	operation string
}

func (e *unknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.operation)
}

func (e *unknownOperationError) ErrorCode() string { return "UnknownOperationException" }
func (e *unknownOperationError) StatusCode() int   { return http.StatusBadRequest }
func (e *unknownOperationError) Message() string   { return e.Error() }

// unmarshal decodes a request body, treating an empty body as an empty
// object the way AWS SDKs send parameterless operations.
func unmarshal(body []byte, v any) error {
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func (s *Server) writeResult(w http.ResponseWriter, r *http.Request, requestID, operation string, result any) {
	s.requests.Inc(operation, strconv.Itoa(http.StatusOK))
	s.log.Debug("handled request",
		"operation", operation,
		"status", http.StatusOK,
		"requestId", requestID,
		"remote", r.RemoteAddr)
	writeAmzJSON(w, http.StatusOK, result)
}

func (s *Server) finish(w http.ResponseWriter, r *http.Request, requestID, operation string, status int, errBody *awsError) {
	s.requests.Inc(operation, strconv.Itoa(status))
	s.log.Debug("handled request",
		"operation", operation,
		"status", status,
		"errorType", errBody.Type,
		"requestId", requestID,
		"remote", r.RemoteAddr)
	writeAmzJSON(w, status, errBody)
}
