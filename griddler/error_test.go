package griddler

import (
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err      Error
		expected string
	}{
		{
			Error{Message: "custom message"},
			"custom message",
		},
		{
			Error{},
			"Unknown error: Supplemental data is []",
		},
		{
			Error{
				Scope:     LineScope,
				Structure: AttributeValueStructure,
				Attribute: CountAttribute,
				Condition: TooSmallCondition,
				Values:    ErrorData{"row 1", 0, 1},
			},
			"Problem in row 1: Count (0): Must be at least 1",
		},
		{
			Error{
				Scope:     LineScope,
				Structure: ScopeStructure,
				Condition: OverfullCondition,
				Values:    ErrorData{"column 2", 5, 4},
			},
			"Problem in column 2: Blocks need 5 cells but only 4 are available",
		},
		{
			Error{
				Scope:     CellScope,
				Structure: ScopeStructure,
				Condition: ConflictCondition,
				Values:    ErrorData{1, 0, Value(2), Value(3)},
			},
			"Problem in cell (1, 0): Already resolved to #, can't be changed to %",
		},
		{
			Error{
				Scope:     ArgumentScope,
				Structure: ScopeStructure,
				Condition: EmptyArgumentCondition,
			},
			"Invalid argument: Required value was missing or empty",
		},
		{
			Error{
				Scope:     InternalScope,
				Structure: ScopeStructure,
				Condition: GeneralCondition,
				Values:    ErrorData{"something impossible happened"},
			},
			"Internal logic error: something impossible happened",
		},
		{
			Error{
				Scope:     LineScope,
				Structure: AttributeValueStructure,
				Attribute: ValueAttribute,
				Condition: GeneralCondition,
				Values:    ErrorData{"row 0", 1, "Not a fill color"},
			},
			"Problem in row 0: Value (1): Not a fill color",
		},
	}
	for i, tc := range cases {
		if got := tc.err.Error(); got != tc.expected {
			t.Errorf("case %d: got %q, expected %q", i, got, tc.expected)
		}
	}
}
