package shipment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// trackingCodePrefix prefixes every generated tracking code.
const trackingCodePrefix = "TRK"

// NewTrackingCode generates an opaque tracking code of the form
// "TRK-XXXXXXXX" where X is an uppercase hex character. Codes are assigned
// once at creation and never change; uniqueness is not enforced here.
func NewTrackingCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("%s-%s", trackingCodePrefix, raw[:8])
}
