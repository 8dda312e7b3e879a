// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package verdict

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// reportSchema is the JSON Schema a serialized ValidationReport must satisfy.
// External session-persistence collaborators cache reports verbatim; the
// schema pins the shape they rely on.
const reportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": [
    "strategy", "deviceId", "certificates", "overallStatus",
    "isLeaked", "hasTrustedRoot", "isStrongIntegrityReady",
    "score", "expiresOn", "daysRemaining", "evaluatedAt", "auditLog"
  ],
  "properties": {
    "strategy": {"enum": ["categorical", "score"]},
    "deviceId": {"type": "string"},
    "keyAlgorithm": {"type": "string"},
    "certificates": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["position", "role", "serialHex", "subject", "issuer", "notBefore", "notAfter", "fingerprint"],
        "properties": {
          "position": {"type": "integer", "minimum": 0},
          "role": {"enum": ["ROOT", "INTERMEDIATE", "END_ENTITY"]},
          "serialHex": {"type": "string"},
          "subject": {"type": "string"},
          "issuer": {"type": "string"},
          "signatureAlgorithm": {"type": "string"},
          "notBefore": {"type": "string", "format": "date-time"},
          "notAfter": {"type": "string", "format": "date-time"},
          "isExpired": {"type": "boolean"},
          "isSelfSigned": {"type": "boolean"},
          "isRevoked": {"type": "boolean"},
          "fingerprint": {"type": "string", "minLength": 32, "maxLength": 32}
        }
      }
    },
    "overallStatus": {"enum": ["VALID", "WEAK", "EXPIRED", "REVOKED", "INVALID"]},
    "isLeaked": {"type": "boolean"},
    "hasTrustedRoot": {"type": "boolean"},
    "isStrongIntegrityReady": {"type": "boolean"},
    "score": {"type": "integer", "minimum": 0, "maximum": 100},
    "riskBand": {"enum": ["LOW", "MEDIUM", "HIGH"]},
    "expiresOn": {"type": "string", "format": "date-time"},
    "daysRemaining": {"type": "integer"},
    "evaluatedAt": {"type": "string", "format": "date-time"},
    "auditLog": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["severity", "message", "timestamp"],
        "properties": {
          "severity": {"enum": ["info", "success", "warning", "error"]},
          "message": {"type": "string"},
          "timestamp": {"type": "string", "format": "date-time"}
        }
      }
    }
  }
}`

// ValidateJSON checks a serialized report against the report schema. It
// returns the first validation failure, or nil when the document conforms.
func ValidateJSON(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(reportSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("verdict: schema validation failed to run: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("verdict: report does not conform to schema: %s", result.Errors()[0])
	}

	return nil
}
