package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDates_NumericForms(t *testing.T) {
	text := "stage du 01/02/2023 au 15-03-2023, embauche 2024/01/05"
	assert.Equal(t, []string{"01/02/2023", "15-03-2023", "2024/01/05"}, Dates(text))
}

func TestDates_MonthNames(t *testing.T) {
	got := Dates("de 15 jan 2022 à 3 Mars 2021, puis 1 août 2023")
	assert.Equal(t, []string{"15 jan 2022", "3 Mars 2021", "1 août 2023"}, got)
}

func TestDates_YearFirstNotDoubleCounted(t *testing.T) {
	assert.Equal(t, []string{"2023/02/01"}, Dates("depuis 2023/02/01"))
}

func TestDates_None(t *testing.T) {
	assert.Empty(t, Dates("aucune date, juste du texte"))
}
