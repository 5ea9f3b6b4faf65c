package hazardforms

import (
	"fmt"
	"strings"
	"time"
)

// AssignFormNumber สร้างเลขฟอร์มแบบ prefix + timestamp เช่น "ACM-1714550400000"
// Prefix is the first 3 characters of the representative company, "GEN" when blank.
// Uniqueness is probabilistic (millisecond clock); the store is never consulted.
func AssignFormNumber(representativeCompany string) string {
	prefix := strings.TrimSpace(representativeCompany)
	if prefix == "" {
		prefix = "GEN"
	}
	if r := []rune(prefix); len(r) > 3 {
		prefix = string(r[:3])
	}
	return fmt.Sprintf("%s-%d", strings.ToUpper(prefix), time.Now().UnixMilli())
}
