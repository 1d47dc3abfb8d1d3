package model

import "testing"

func TestTermCodeRoundTrip(t *testing.T) {
	tests := []struct {
		year     int
		semester Semester
		want     TermCode
	}{
		{2012, Fall, 201210},
		{2012, Spring, 201220},
		{2012, Summer, 201230},
		{2015, Fall, 201510},
		{2019, Spring, 201920},
		{2025, Summer, 202530},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := NewTermCode(tt.year, tt.semester)
			if got != tt.want {
				t.Fatalf("NewTermCode(%d, %s) = %d, want %d", tt.year, tt.semester, got, tt.want)
			}
			if got.Year() != tt.year {
				t.Errorf("TermCode(%d).Year() = %d, want %d", got, got.Year(), tt.year)
			}
			sem, ok := got.Semester()
			if !ok || sem != tt.semester {
				t.Errorf("TermCode(%d).Semester() = %q, %v, want %q", got, sem, ok, tt.semester)
			}
		})
	}
}

func TestSemesterFromCode(t *testing.T) {
	tests := []struct {
		code   int
		want   Semester
		wantOK bool
	}{
		{10, Fall, true},
		{20, Spring, true},
		{30, Summer, true},
		{0, "", false},
		{40, "", false},
		{99, "", false},
	}

	for _, tt := range tests {
		got, ok := SemesterFromCode(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("SemesterFromCode(%d) = %q, %v, want %q, %v", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTermCodeInvalidSemester(t *testing.T) {
	if _, ok := TermCode(201599).Semester(); ok {
		t.Error("TermCode(201599).Semester() ok = true, want false")
	}
}

func TestTagsString(t *testing.T) {
	tests := []struct {
		tags Tags
		want string
	}{
		{Tags{TagInstruction}, "Instruction"},
		{Tags{TagInstruction, TagHoliday}, "Instruction,Holiday"},
		{Tags{TagRegistration}, "Registration"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := tt.tags.String(); got != tt.want {
			t.Errorf("Tags%v.String() = %q, want %q", tt.tags, got, tt.want)
		}
	}
}

func TestTagsHas(t *testing.T) {
	ts := Tags{TagInstruction, TagHoliday}
	if !ts.Has(TagHoliday) {
		t.Error("Has(TagHoliday) = false, want true")
	}
	if ts.Has(TagRegistration) {
		t.Error("Has(TagRegistration) = true, want false")
	}
}
