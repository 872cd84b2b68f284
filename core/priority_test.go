package core_test

import (
	"testing"

	"mytodo/core"
)

func TestClassify_AllCombinations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		important bool
		urgent    bool
		want      core.Priority
		label     string
		class     string
	}{
		{true, true, core.PriorityCritical, "Important & Urgent", "critical"},
		{false, true, core.PriorityUrgent, "NotImportant & Urgent", "urgent"},
		{true, false, core.PriorityImportant, "Important & NotUrgent", "important"},
		{false, false, core.PriorityNormal, "NotImportant & NotUrgent", "normal"},
	}

	seen := make(map[core.Priority]bool)
	for _, tc := range cases {
		got := core.Classify(tc.important, tc.urgent)
		if got != tc.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tc.important, tc.urgent, got, tc.want)
		}
		if got.Label() != tc.label {
			t.Errorf("Classify(%v, %v).Label() = %q, want %q", tc.important, tc.urgent, got.Label(), tc.label)
		}
		if got.Class() != tc.class {
			t.Errorf("Classify(%v, %v).Class() = %q, want %q", tc.important, tc.urgent, got.Class(), tc.class)
		}
		if seen[got] {
			t.Errorf("priority %v produced by more than one flag combination", got)
		}
		seen[got] = true
	}

	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct priorities, got %d", len(seen))
	}
}

func TestTaskPriority(t *testing.T) {
	t.Parallel()

	task := core.Task{Important: true, Urgent: false}
	if task.Priority() != core.PriorityImportant {
		t.Fatalf("expected PriorityImportant, got %v", task.Priority())
	}
}

func TestParseExportFilter(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"pending", "done", "all", " Pending ", "ALL"} {
		if _, ok := core.ParseExportFilter(s); !ok {
			t.Errorf("ParseExportFilter(%q) rejected a valid filter", s)
		}
	}
	for _, s := range []string{"", "complete", "archived", "pending,done"} {
		if _, ok := core.ParseExportFilter(s); ok {
			t.Errorf("ParseExportFilter(%q) accepted an invalid filter", s)
		}
	}
}
