package tools

import "testing"

func TestDescriptors(t *testing.T) {
	descriptors := Descriptors()

	if len(descriptors) != 3 {
		t.Fatalf("Expected exactly 3 descriptors, got %d", len(descriptors))
	}

	wantNames := []string{ToolIncrement, ToolDecrement, ToolGetCounter}
	for i, want := range wantNames {
		if descriptors[i].Name != want {
			t.Errorf("Descriptor %d name = %q, want %q", i, descriptors[i].Name, want)
		}
		if descriptors[i].Description == "" {
			t.Errorf("Descriptor %q has an empty description", descriptors[i].Name)
		}
	}
}

func TestDescriptorNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Descriptors() {
		if seen[d.Name] {
			t.Errorf("Duplicate tool name %q in registration table", d.Name)
		}
		seen[d.Name] = true
	}
}

func TestDescriptorsStable(t *testing.T) {
	// Discovery must return the same table regardless of how often it is
	// asked.
	first := Descriptors()
	second := Descriptors()

	if len(first) != len(second) {
		t.Fatalf("Descriptor count changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Descriptor %d changed between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}
