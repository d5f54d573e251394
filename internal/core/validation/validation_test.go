package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/core/validation"
	"github.com/stretchr/testify/assert"
)

func TestRequiredID(t *testing.T) {
	assert.True(t, validation.RequiredID("").Invalid)
	assert.True(t, validation.RequiredID("   ").Invalid)
	assert.True(t, validation.RequiredID("00000000-0000-0000-0000-000000000000").Invalid)
	assert.False(t, validation.RequiredID("dt-1").Invalid)
	assert.Equal(t, "Id is required", validation.RequiredID("").Message)
}

func TestRequiredTextAndDate(t *testing.T) {
	assert.True(t, validation.RequiredText(" \t").Invalid)
	assert.False(t, validation.RequiredText("opt-in").Invalid)
	assert.True(t, validation.RequiredDate(time.Time{}).Invalid)
	assert.False(t, validation.RequiredDate(time.Now()).Invalid)
}

func TestMaxLength(t *testing.T) {
	cond := validation.MaxLength(strings.Repeat("a", 256), 255)
	assert.True(t, cond.Invalid)
	assert.Equal(t, "Text exceeds max length of 255 characters but found 256", cond.Message)

	assert.False(t, validation.MaxLength(strings.Repeat("é", 255), 255).Invalid, "length counts characters, not bytes")
}

func TestSameAndDifferent(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.False(t, validation.SameText("actor-1", "actor-1", "CreatedBy").Invalid)
	cond := validation.SameText("actor-1", "actor-2", "CreatedBy")
	assert.True(t, cond.Invalid)
	assert.Equal(t, "Text is not the same as CreatedBy", cond.Message)

	assert.False(t, validation.SameDate(now, now.In(time.FixedZone("BST", 3600)), "CreatedDate").Invalid)
	assert.True(t, validation.SameDate(now, now.Add(time.Second), "CreatedDate").Invalid)

	cond = validation.DifferentDate(now, now, "CreatedDate")
	assert.True(t, cond.Invalid)
	assert.Equal(t, "Date is the same as CreatedDate", cond.Message)
	assert.False(t, validation.DifferentDate(now, now.Add(time.Second), "CreatedDate").Invalid)
}

func TestRecentDate(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	window := 90 * time.Second

	assert.False(t, validation.RecentDate(now, now, window).Invalid)
	assert.False(t, validation.RecentDate(now.Add(-window), now, window).Invalid, "window start is inclusive")
	assert.True(t, validation.RecentDate(now.Add(-window-time.Second), now, window).Invalid)

	future := now.Add(91 * time.Second)
	cond := validation.RecentDate(future, now, window)
	assert.True(t, cond.Invalid)
	assert.Equal(t,
		"Date is not recent. Expected a value between 2024-05-01T09:58:30Z and 2024-05-01T10:00:00Z but found 2024-05-01T10:01:31Z",
		cond.Message)
}

func TestValidateCollectsEveryFailure(t *testing.T) {
	errs := validation.Errors{}
	validation.Validate(errs,
		validation.On("Name", validation.RequiredText("")),
		validation.On("Name", validation.MaxLength("", 255)),
		validation.On("Id", validation.RequiredID("")),
		validation.On("CreatedBy", validation.RequiredText("actor-1")),
	)

	assert.True(t, errs.HasErrors())
	assert.Equal(t, []string{"Text is required"}, errs["Name"])
	assert.Equal(t, []string{"Id is required"}, errs["Id"])
	assert.NotContains(t, errs, "CreatedBy")
	assert.Equal(t, "Id: Id is required; Name: Text is required", errs.Error())
}

func TestErrorsMerge(t *testing.T) {
	errs := validation.Errors{"Id": {"Id is required"}}
	errs.Merge(validation.Errors{"Id": {"other"}, "Name": {"Text is required"}})

	assert.Equal(t, []string{"Id is required", "other"}, errs["Id"])
	assert.Len(t, errs, 2)
}
