package customer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeInfo parses a CRM payload into Info with case-insensitive key
// matching. The backend is not consistent about field casing across
// environments, so keys are normalized to lower case before mapping. Unknown
// keys are ignored and missing keys leave the field empty; only a body that
// is not a JSON object counts as a failure.
func decodeInfo(body []byte) (Info, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Info{}, fmt.Errorf("decode customer payload: %w", err)
	}

	fields := map[string]string{}
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			// Non-string values are treated the same as absent fields.
			continue
		}
		fields[strings.ToLower(key)] = s
	}

	return Info{
		ClientID:        fields["clientid"],
		EditApproval:    fields["editapproval"],
		Dba:             fields["dba"],
		ClientLegalName: fields["clientlegalname"],
		ComplianceHold:  fields["compliancehold"],
		Level:           fields["level"],
		PaymentTermID:   fields["paymenttermid"],
		PaymentMethod:   fields["paymentmethod"],
		Status:          fields["status"],
	}, nil
}
