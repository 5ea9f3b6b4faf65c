package hazardforms

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignFormNumberPrefix(t *testing.T) {
	t.Run("TestCompanyPrefix", func(t *testing.T) {
		number := AssignFormNumber("Acme Industrial")
		assert.True(t, strings.HasPrefix(number, "ACM-"))
	})

	t.Run("TestLowercaseCompany", func(t *testing.T) {
		number := AssignFormNumber("northern pipeline")
		assert.True(t, strings.HasPrefix(number, "NOR-"))
	})

	t.Run("TestShortCompany", func(t *testing.T) {
		number := AssignFormNumber("BP")
		assert.True(t, strings.HasPrefix(number, "BP-"))
	})

	t.Run("TestDefaultPrefixWhenBlank", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(AssignFormNumber(""), "GEN-"))
		assert.True(t, strings.HasPrefix(AssignFormNumber("   "), "GEN-"))
	})
}

func TestAssignFormNumberFormat(t *testing.T) {
	format := regexp.MustCompile(`^[A-Z]{1,3}-\d+$`)

	for _, company := range []string{"", "Acme Industrial", "BP", "norteam"} {
		number := AssignFormNumber(company)
		assert.Regexp(t, format, number, "company %q", company)
	}
}
