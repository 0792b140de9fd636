package wizard

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/pkg/models"
)

// stubForms replaces the form runner for the duration of a test.
func stubForms(t *testing.T, fn func(*huh.Form) error) *int {
	t.Helper()
	calls := 0
	prev := runForm
	runForm = func(f *huh.Form) error {
		calls++
		return fn(f)
	}
	t.Cleanup(func() { runForm = prev })
	return &calls
}

func TestGeneratorQuestions(t *testing.T) {
	cfg := naming.DefaultConfiguration()
	cfg.Variables = append(cfg.Variables,
		models.Variable{Name: "Client", Type: models.VariableText, Values: []string{"acme"}},
		models.Variable{Name: "Empty", Type: models.VariableDropdown, Values: []string{}, AllowFreeInput: true},
	)

	qs := GeneratorQuestions(cfg, true)
	require.Len(t, qs, 10)

	assert.Equal(t, "Size", qs[0].ID)
	assert.Equal(t, QuestionTypeMultiSelect, qs[0].Type)
	assert.Len(t, qs[0].Options, 5)

	assert.Equal(t, QuestionTypeSelect, qs[1].Type)
	assert.Equal(t, Option{Label: "CREATOR", Value: "CREATOR"}, qs[1].Options[0])

	assert.Equal(t, QuestionTypeInput, qs[7].Type)
	assert.Equal(t, QuestionTypeInput, qs[8].Type, "empty list falls back to input")
	assert.True(t, qs[8].AllowOther)

	assert.Equal(t, models.VariationKey, qs[9].ID)
	for _, q := range qs {
		assert.True(t, q.Optional)
	}
}

func TestGeneratorQuestionsVariation(t *testing.T) {
	cfg := naming.DefaultConfiguration()
	assert.Len(t, GeneratorQuestions(cfg, false), 7)

	cfg.Variables = append(cfg.Variables, models.Variable{Name: "Variation", Type: models.VariableText})
	qs := GeneratorQuestions(cfg, true)
	assert.Len(t, qs, 8, "configured variation is not asked twice")
}

func TestRunNoQuestions(t *testing.T) {
	_, err := Run(nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestRunCancelled(t *testing.T) {
	calls := stubForms(t, func(*huh.Form) error { return huh.ErrUserAborted })

	_, err := Run([]Question{{ID: "a", Type: QuestionTypeInput}, {ID: "b", Type: QuestionTypeInput}})
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 1, *calls, "stops at the first aborted form")
}

func TestRunWrapsFormErrors(t *testing.T) {
	boom := errors.New("boom")
	stubForms(t, func(*huh.Form) error { return boom })

	_, err := Run([]Question{{ID: "a", Type: QuestionTypeInput}})
	assert.ErrorIs(t, err, boom)
}

func TestRunOneFormPerQuestion(t *testing.T) {
	calls := stubForms(t, func(*huh.Form) error { return nil })

	sel, err := Run([]Question{
		{ID: "Client", Type: QuestionTypeInput, Optional: true},
		{ID: "Notes", Type: QuestionTypeInput, Optional: true},
		{ID: "Size", Type: QuestionTypeMultiSelect, AllowOther: true, Optional: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, *calls, "multiselect with other asks a follow-up")
	assert.Empty(t, sel, "unanswered questions are skipped")
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		ans  answer
		want []string
	}{
		{"select value", Question{Type: QuestionTypeSelect}, answer{single: "COLD"}, []string{"COLD"}},
		{"select skip", Question{Type: QuestionTypeSelect}, answer{single: skipValue}, nil},
		{"select empty", Question{Type: QuestionTypeSelect}, answer{}, nil},
		{"select other", Question{Type: QuestionTypeSelect}, answer{single: otherValue, other: " custom "}, []string{"custom"}},
		{"select other blank", Question{Type: QuestionTypeSelect}, answer{single: otherValue, other: " "}, nil},
		{"multi", Question{Type: QuestionTypeMultiSelect}, answer{multi: []string{"1x1", "4x5"}}, []string{"1x1", "4x5"}},
		{"multi plus other", Question{Type: QuestionTypeMultiSelect}, answer{multi: []string{"1x1"}, other: "2x3, 5x5"}, []string{"1x1", "2x3", "5x5"}},
		{"multi none", Question{Type: QuestionTypeMultiSelect}, answer{}, nil},
		{"input", Question{Type: QuestionTypeInput}, answer{text: "  v2 "}, []string{"v2"}},
		{"input blank", Question{Type: QuestionTypeInput}, answer{text: "   "}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ans := tt.ans
			assert.Equal(t, tt.want, resolve(&tt.q, &ans))
		})
	}
}

func TestNeedsOther(t *testing.T) {
	assert.True(t, needsOther(&Question{Type: QuestionTypeSelect}, &answer{single: otherValue}))
	assert.False(t, needsOther(&Question{Type: QuestionTypeSelect, AllowOther: true}, &answer{single: "x"}))
	assert.True(t, needsOther(&Question{Type: QuestionTypeMultiSelect, AllowOther: true}, &answer{}))
	assert.False(t, needsOther(&Question{Type: QuestionTypeMultiSelect}, &answer{}))
	assert.False(t, needsOther(&Question{Type: QuestionTypeInput, AllowOther: true}, &answer{}))
}

func TestBuildFieldTypes(t *testing.T) {
	ans := &answer{}

	_, ok := buildField(&Question{Type: QuestionTypeSelect, Options: []Option{{"A", "A"}}, AllowOther: true, Optional: true}, ans).(*huh.Select[string])
	assert.True(t, ok)
	_, ok = buildField(&Question{Type: QuestionTypeMultiSelect}, ans).(*huh.MultiSelect[string])
	assert.True(t, ok)
	_, ok = buildField(&Question{Type: QuestionTypeInput, Options: []Option{{"v1", "v1"}}}, ans).(*huh.Input)
	assert.True(t, ok)
}

func TestRequireText(t *testing.T) {
	assert.Error(t, requireText(" "))
	assert.NoError(t, requireText("x"))
}

func TestRunEdit(t *testing.T) {
	in := naming.VariableEdit{Label: "Hook", Type: models.VariableDropdown, Values: "PAIN, PROOF"}

	stubForms(t, func(*huh.Form) error { return nil })
	out, err := RunEdit(in)
	require.NoError(t, err)
	assert.Equal(t, in, out, "submitting unchanged keeps the values")

	stubForms(t, func(*huh.Form) error { return huh.ErrUserAborted })
	out, err = RunEdit(in)
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, in, out)
}

func TestEditFieldsBindValues(t *testing.T) {
	e := naming.VariableEdit{Label: "Style", Type: models.VariableMultiselect}
	fields := editFields(&e)
	require.Len(t, fields, 4)
	assert.Equal(t, "Style", fields[0].GetValue())
}

func TestConfirm(t *testing.T) {
	stubForms(t, func(*huh.Form) error { return huh.ErrUserAborted })
	ok, err := Confirm("Reset?", "")
	require.NoError(t, err)
	assert.False(t, ok)

	stubForms(t, func(*huh.Form) error { return nil })
	ok, err = Confirm("Reset?", "")
	require.NoError(t, err)
	assert.False(t, ok, "defaults to no")
}

func TestTheme(t *testing.T) {
	th := newAdtaxTheme()
	require.NotNil(t, th)
	assert.Equal(t, "▸ ", th.Focused.SelectSelector.Value())
}
