package style

import (
	"strings"
	"testing"
)

func TestDescriptorLine(t *testing.T) {
	line := DescriptorLine("translate", "notify")
	if !strings.Contains(line, "translate") || !strings.Contains(line, "notify") {
		t.Errorf("DescriptorLine() = %q, should mention attribute and handler", line)
	}
}

func TestOutcomeLine(t *testing.T) {
	ok := OutcomeLine("pCube1", 2, nil)
	if !strings.Contains(ok, "pCube1") || !strings.Contains(ok, "2 event(s) active") {
		t.Errorf("OutcomeLine() = %q, should report the activation count", ok)
	}

	failed := OutcomeLine("pCube1", 0, errString("boom"))
	if !strings.Contains(failed, "boom") {
		t.Errorf("OutcomeLine() = %q, should include the error", failed)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
