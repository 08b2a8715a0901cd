package model_test

import (
	"testing"
	"time"

	model "github.com/iitg/jobassessment/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestAssessment(t *testing.T) {
	convey.Convey("Given an Assessment struct", t, func() {
		convey.Convey("When creating a new assessment", func() {
			created := time.Now()
			assessment := model.Assessment{
				ID:               "a-1",
				Title:            "Backend Engineer",
				Role:             "backend",
				Company:          "Acme",
				Status:           model.AssessmentActive,
				RequiredSkills:   []string{"go", "sql"},
				MinExperience:    3,
				MinMatchScore:    70,
				IncludeInterview: true,
				CreatedAt:        created,
			}

			convey.Convey("Then it should have the correct values", func() {
				convey.So(assessment.ID, convey.ShouldEqual, "a-1")
				convey.So(assessment.Status, convey.ShouldEqual, model.AssessmentActive)
				convey.So(assessment.RequiredSkills, convey.ShouldResemble, []string{"go", "sql"})
				convey.So(assessment.MinMatchScore, convey.ShouldEqual, 70)
				convey.So(assessment.QuestionConfig, convey.ShouldBeNil)
				convey.So(assessment.CreatedAt, convey.ShouldEqual, created)
			})
		})

		convey.Convey("When creating an assessment with zero values", func() {
			assessment := model.Assessment{}

			convey.Convey("Then it should have default values", func() {
				convey.So(assessment.ID, convey.ShouldEqual, "")
				convey.So(assessment.MinMatchScore, convey.ShouldEqual, 0)
				convey.So(assessment.AvgScore, convey.ShouldEqual, 0)
				convey.So(assessment.IncludeInterview, convey.ShouldBeFalse)
			})
		})
	})
}

func TestSubmission(t *testing.T) {
	convey.Convey("Given a Submission struct", t, func() {
		convey.Convey("When creating a submission with answers", func() {
			submission := model.Submission{
				AssessmentID: "a-1",
				CandidateID:  "c-1",
				Questions: []model.Question{
					{ID: "1", Type: "mcq", CorrectAnswer: "Option A"},
				},
				Answers: map[string]string{"1": "Option A"},
				Score:   100,
				Result:  model.SubmissionPassed,
			}

			convey.Convey("Then it should carry the answer map", func() {
				convey.So(submission.Answers["1"], convey.ShouldEqual, "Option A")
				convey.So(submission.Result, convey.ShouldEqual, model.SubmissionPassed)
			})
		})
	})
}
