package slice

import (
	"app/base/types/entitlements"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

const (
	keyEntitlementStatus = "EntitlementStatus"
	keyProvisionStatus   = "ProvisionStatus"
	keyProvisionTimeLeft = "ProvisionTimeLeft"
	keyServiceFlowURL    = "ServiceFlow_URL"
)

var (
	ErrMalformedBody = errors.New("malformed entitlement response")
	ErrNumberFormat  = errors.New("non-numeric entitlement status value")
)

// numbers are kept as json.Number so that their text form is not altered before integer parsing
var jsonAPI = sonic.Config{UseNumber: true, CopyString: true, ValidateString: true}.Froze()

// decodeResponse maps the untrusted response body into typed result. The result is never nil, on error it
// holds all fields populated before the failure.
func decodeResponse(body string, correctedFieldMapping bool) (*entitlements.Response, error) {
	result := &entitlements.Response{}

	var document map[string]interface{}
	if err := jsonAPI.UnmarshalFromString(body, &document); err != nil {
		return result, errors.Wrap(ErrMalformedBody, err.Error())
	}
	if document == nil {
		return result, errors.Wrap(ErrMalformedBody, "response is not a json object")
	}

	raw, has := document[entitlements.AppPremiumNetworkSlice]
	if !has {
		return result, nil
	}
	token, ok := raw.(map[string]interface{})
	if !ok {
		return result, errors.Wrapf(ErrMalformedBody, "%s is not a json object", entitlements.AppPremiumNetworkSlice)
	}

	if value, has := token[keyEntitlementStatus]; has {
		status, err := parseStatus(keyEntitlementStatus, value)
		if err != nil {
			return result, err
		}
		result.EntitlementStatus = status
	}

	if value, has := token[keyProvisionStatus]; has && value != nil {
		status, err := parseStatus(keyProvisionStatus, value)
		if err != nil {
			return result, err
		}
		result.ProvisionStatus = status
	}

	if value, has := token[keyProvisionTimeLeft]; has && value != nil {
		timeLeft, err := parseStatus(keyProvisionTimeLeft, value)
		if err != nil {
			return result, err
		}
		if correctedFieldMapping {
			result.ProvisionTimeLeft = timeLeft
		} else {
			result.EntitlementStatus = timeLeft
		}
	}

	if value, has := token[keyServiceFlowURL]; has && value != nil {
		if !correctedFieldMapping {
			status, err := parseStatus(keyServiceFlowURL, value)
			if err != nil {
				return result, err
			}
			result.ProvisionStatus = status
		}
		// null already skipped above
		url, _ := fieldText(value)
		result.ServiceFlowURL = url
	}

	return result, nil
}

// parseStatus reads 32-bit decimal integer sent either as json string or number
func parseStatus(key string, value interface{}) (int, error) {
	text, isNull := fieldText(value)
	if isNull {
		return 0, errors.Wrapf(ErrNumberFormat, "%s is null", key)
	}
	status, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrNumberFormat, "%s has value %q", key, text)
	}
	return int(status), nil
}

// fieldText returns text form of loosely typed value, null is reported separately
func fieldText(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, false
	case json.Number:
		return v.String(), false
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), false
	case bool:
		return strconv.FormatBool(v), false
	default:
		return fmt.Sprint(v), false
	}
}
