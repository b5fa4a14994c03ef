package types

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestOverrideSchemaMatchesFields keeps the hand-written schemas in step with
// the config structs: every overridable field has a schema property and
// nothing else does.
func TestOverrideSchemaMatchesFields(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			schema, err := OverrideSchema(kind)
			if err != nil {
				t.Fatalf("OverrideSchema() error: %v", err)
			}

			props, ok := schema["properties"].(map[string]interface{})
			if !ok {
				t.Fatalf("properties has type %T", schema["properties"])
			}
			var got []string
			for name := range props {
				got = append(got, name)
			}
			sort.Strings(got)

			var want []string
			for _, name := range FieldNames(kind) {
				if name != "key" {
					want = append(want, name)
				}
			}
			sort.Strings(want)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("schema properties mismatch (-want +got):\n%s", diff)
			}
			if schema["additionalProperties"] != false {
				t.Error("schema must reject additional properties")
			}
		})
	}
}

func TestOverrideSchemaUnknownKind(t *testing.T) {
	if _, err := OverrideSchema("matrix"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
