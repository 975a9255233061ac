package services

import (
	"strings"
	"testing"

	"zeroxp/models"

	"github.com/stretchr/testify/assert"
)

func TestAlertMatches_JobType(t *testing.T) {
	user := &models.User{AlertJobTypes: "full-time, contract"}
	job := &models.Job{JobType: models.JobTypeContract}
	assert.True(t, alertMatches(user, job))

	job.JobType = models.JobTypeInternship
	assert.False(t, alertMatches(user, job))
}

func TestAlertMatches_LocationSubstring(t *testing.T) {
	user := &models.User{AlertLocations: "Berlin, remote"}
	job := &models.Job{Location: "Remote (EU)"}
	assert.True(t, alertMatches(user, job))
}

func TestAlertMatches_SkillTagOverlap(t *testing.T) {
	user := &models.User{AlertSkills: "go, postgres"}
	job := &models.Job{Tags: "React,Go,Docker"}
	assert.True(t, alertMatches(user, job))

	job.Tags = "React,Vue"
	assert.False(t, alertMatches(user, job))
}

func TestAlertMatches_NoPreferences(t *testing.T) {
	assert.False(t, alertMatches(&models.User{}, &models.Job{JobType: "full-time", Location: "Berlin"}))
}

func TestJobAlertBody_TruncatesLongDescriptions(t *testing.T) {
	job := &models.Job{
		Title:       "Backend Engineer",
		Company:     "ZeroXP",
		Location:    "Remote",
		Description: strings.Repeat("x", 500),
	}
	body := jobAlertBody(&models.User{FirstName: "Sam"}, job)
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "...")
	assert.NotContains(t, body, strings.Repeat("x", 200))
}

func TestCSVHelpers(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, splitCSV("A,  b C ,d"))
	assert.Nil(t, splitCSV(""))

	assert.True(t, csvContains("Go, Rust", "go"))
	assert.False(t, csvContains("Go, Rust", "python"))
	assert.False(t, csvContains("Go, Rust", ""))
}

func TestMailerEnabled(t *testing.T) {
	assert.False(t, (&Mailer{}).Enabled())
	assert.False(t, (&Mailer{Host: "smtp.example.com"}).Enabled())
	assert.True(t, (&Mailer{Host: "smtp.example.com", From: "noreply@zeroxp.dev"}).Enabled())
}
