package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackedRecordValidate(t *testing.T) {
	r := &TrackedRecord{Kind: KindRiskAssessment, Name: "Roof works"}
	assert.NoError(t, r.Validate())

	r.Name = "   "
	assert.ErrorContains(t, r.Validate(), "name is required")

	r.Name = "Roof works"
	r.Kind = "permit"
	assert.ErrorContains(t, r.Validate(), "invalid record kind")
}

func TestTrackedRecordDisplayName(t *testing.T) {
	r := &TrackedRecord{Name: "Roof works"}
	assert.Equal(t, "Roof works", r.DisplayName())
	r.Reference = "RA-001"
	assert.Equal(t, "RA-001", r.DisplayName())
}

func TestEquipmentValidate(t *testing.T) {
	assert.Error(t, (&Equipment{}).Validate())
	assert.NoError(t, (&Equipment{Name: "Gas Detector"}).Validate())
}

func TestChecklistValidate(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	c := &Checklist{EquipmentID: "eq1", CheckDate: now, Frequency: FrequencyWeekly}
	assert.NoError(t, c.Validate())

	missingEq := *c
	missingEq.EquipmentID = ""
	assert.ErrorContains(t, missingEq.Validate(), "equipment id")

	missingDate := *c
	missingDate.CheckDate = time.Time{}
	assert.ErrorContains(t, missingDate.Validate(), "check date")

	badFreq := *c
	badFreq.Frequency = "hourly"
	assert.ErrorContains(t, badFreq.Validate(), "frequency")
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr())
}
