package model_test

import (
	"testing"

	model "github.com/iitg/jobassessment/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseAssessmentStatus(t *testing.T) {
	Convey("Given assessment status tokens", t, func() {
		Convey("When parsing canonical tokens", func() {
			for token, want := range map[string]model.AssessmentStatus{
				"active":   model.AssessmentActive,
				"draft":    model.AssessmentDraft,
				"archived": model.AssessmentArchived,
			} {
				status, err := model.ParseAssessmentStatus(token)
				So(err, ShouldBeNil)
				So(status, ShouldEqual, want)
			}
		})

		Convey("When parsing mixed-case boundary spellings", func() {
			status, err := model.ParseAssessmentStatus("  ACTIVE ")
			So(err, ShouldBeNil)
			So(status, ShouldEqual, model.AssessmentActive)
			So(status.String(), ShouldEqual, "active")
		})

		Convey("When parsing an unknown token", func() {
			_, err := model.ParseAssessmentStatus("paused")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseApplicationStatus(t *testing.T) {
	Convey("Given application status tokens", t, func() {
		Convey("When parsing valid tokens", func() {
			status, err := model.ParseApplicationStatus("Shortlisted")
			So(err, ShouldBeNil)
			So(status, ShouldEqual, model.ApplicationShortlisted)

			status, err = model.ParseApplicationStatus("rejected")
			So(err, ShouldBeNil)
			So(status, ShouldEqual, model.ApplicationRejected)
		})

		Convey("When parsing an unknown token", func() {
			_, err := model.ParseApplicationStatus("waitlisted")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseSubmissionResult(t *testing.T) {
	Convey("Given submission result tokens", t, func() {
		Convey("When parsing valid tokens", func() {
			result, err := model.ParseSubmissionResult("PASSED")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, model.SubmissionPassed)

			result, err = model.ParseSubmissionResult("failed")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, model.SubmissionFailed)
		})

		Convey("When parsing an unknown token", func() {
			_, err := model.ParseSubmissionResult("pending")
			So(err, ShouldNotBeNil)
		})
	})
}
