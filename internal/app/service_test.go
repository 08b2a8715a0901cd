package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repository "github.com/iitg/jobassessment/internal/adapters/repository"
	service "github.com/iitg/jobassessment/internal/app"
	"github.com/iitg/jobassessment/internal/domain/model"
	"github.com/iitg/jobassessment/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func newStartedService(t *testing.T) *service.Service {
	t.Helper()

	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	svc := service.New(
		service.WithWorkerCount(1),
		service.WithQueueSize(32),
		service.WithDedupeSize(32),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("service start: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestAssessmentLifecycle(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newStartedService(t)

		Convey("When creating an assessment without a status", func() {
			created, err := svc.CreateAssessment(ctx, model.Assessment{Title: "Backend"})
			So(err, ShouldBeNil)

			Convey("Then it defaults to active with a zero average", func() {
				So(created.Status, ShouldEqual, model.AssessmentActive)
				So(created.AvgScore, ShouldEqual, 0)
				So(created.ID, ShouldNotBeEmpty)
			})

			Convey("And a patch changes only the provided fields", func() {
				title := "Senior Backend"
				status := model.AssessmentArchived
				updated, err := svc.UpdateAssessment(ctx, created.ID, model.AssessmentPatch{
					Title:  &title,
					Status: &status,
				})
				So(err, ShouldBeNil)
				So(updated.Title, ShouldEqual, "Senior Backend")
				So(updated.Status, ShouldEqual, model.AssessmentArchived)
				So(updated.CreatedAt, ShouldEqual, created.CreatedAt)
			})
		})

		Convey("When updating an unknown assessment", func() {
			_, err := svc.UpdateAssessment(ctx, "missing", model.AssessmentPatch{})
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestApplyScoresAndClassifies(t *testing.T) {
	Convey("Given an assessment with thresholds", t, func() {
		ctx := context.Background()
		svc := newStartedService(t)

		assessment, err := svc.CreateAssessment(ctx, model.Assessment{
			Title:          "Backend",
			RequiredSkills: []string{"go", "sql"},
			MinExperience:  2,
			MinMatchScore:  70,
		})
		So(err, ShouldBeNil)

		Convey("When a matching candidate applies", func() {
			stored, err := svc.Apply(ctx, model.Application{
				AssessmentID:    assessment.ID,
				CandidateID:     "c-1",
				Name:            "Alice",
				Skills:          []string{"Go", "SQL"},
				ExperienceYears: 4,
			})
			So(err, ShouldBeNil)

			Convey("Then the application is scored and shortlisted", func() {
				So(stored.Score, ShouldEqual, 100)
				So(stored.Status, ShouldEqual, model.ApplicationShortlisted)
			})

			Convey("And reapplying replaces the stored application", func() {
				replaced, err := svc.Apply(ctx, model.Application{
					AssessmentID:    assessment.ID,
					CandidateID:     "c-1",
					Name:            "Alice",
					Skills:          []string{"go"},
					ExperienceYears: 1,
				})
				So(err, ShouldBeNil)
				So(replaced.ID, ShouldEqual, stored.ID)
				So(replaced.Status, ShouldEqual, model.ApplicationRejected)

				rows, err := svc.ListApplications(ctx, assessment.ID)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
			})
		})

		Convey("When applying to an unknown assessment", func() {
			_, err := svc.Apply(ctx, model.Application{AssessmentID: "missing", CandidateID: "c-1"})
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestSubmitGradesAndRefreshes(t *testing.T) {
	Convey("Given an assessment", t, func() {
		ctx := context.Background()
		svc := newStartedService(t)

		assessment, err := svc.CreateAssessment(ctx, model.Assessment{Title: "Quiz"})
		So(err, ShouldBeNil)

		questions := []model.Question{
			{ID: "1", Type: "mcq", CorrectAnswer: "A"},
			{ID: "2", Type: "mcq", CorrectAnswer: "B"},
		}

		Convey("When a candidate submits", func() {
			stored, err := svc.Submit(ctx, model.Submission{
				AssessmentID: assessment.ID,
				CandidateID:  "c-1",
				Questions:    questions,
				Answers:      map[string]string{"1": "a", "2": "x"},
			})
			So(err, ShouldBeNil)

			Convey("Then the submission is graded and classified", func() {
				So(stored.Score, ShouldEqual, 50)
				So(stored.Result, ShouldEqual, model.SubmissionFailed)
			})

			Convey("And the assessment completion is marked", func() {
				done, err := svc.AssessmentCompleted(ctx, assessment.ID, "c-1")
				So(err, ShouldBeNil)
				So(done, ShouldBeTrue)
			})

			Convey("And the cached average converges to the rounded mean", func() {
				_, err := svc.Submit(ctx, model.Submission{
					AssessmentID: assessment.ID,
					CandidateID:  "c-2",
					Questions:    questions,
					Answers:      map[string]string{"1": "A", "2": "B"},
				})
				So(err, ShouldBeNil)

				// mean(50, 100) = 75, applied by the background workers
				deadline := time.Now().Add(2 * time.Second)
				avg := 0
				for time.Now().Before(deadline) {
					fetched, err := svc.GetAssessment(ctx, assessment.ID)
					So(err, ShouldBeNil)
					avg = fetched.AvgScore
					if avg == 75 {
						break
					}
					time.Sleep(10 * time.Millisecond)
				}
				So(avg, ShouldEqual, 75)
			})
		})
	})
}

func TestAnalyticsAndQuestions(t *testing.T) {
	Convey("Given applications and submissions", t, func() {
		ctx := context.Background()
		svc := newStartedService(t)

		assessment, err := svc.CreateAssessment(ctx, model.Assessment{
			Title: "Quiz",
			QuestionConfig: &model.QuestionConfig{
				MCQCount:         2,
				DescriptiveCount: 1,
				DSACount:         1,
			},
		})
		So(err, ShouldBeNil)

		_, err = svc.Apply(ctx, model.Application{
			AssessmentID: assessment.ID, CandidateID: "c-1", Name: "Alice", Email: "alice@example.com",
		})
		So(err, ShouldBeNil)

		questions := []model.Question{{ID: "1", Type: "mcq", CorrectAnswer: "A"}}
		_, err = svc.Submit(ctx, model.Submission{
			AssessmentID: assessment.ID, CandidateID: "c-1",
			Questions: questions, Answers: map[string]string{"1": "A"},
		})
		So(err, ShouldBeNil)
		_, err = svc.Submit(ctx, model.Submission{
			AssessmentID: assessment.ID, CandidateID: "c-2",
			Questions: questions, Answers: map[string]string{"1": "B"},
		})
		So(err, ShouldBeNil)

		Convey("When assembling analytics", func() {
			report, err := svc.Analytics(ctx, assessment.ID)
			So(err, ShouldBeNil)

			Convey("Then aggregates come from the raw rows", func() {
				So(report.TotalCandidates, ShouldEqual, 1)
				So(report.AverageScore, ShouldEqual, 50)
				So(report.TopScore, ShouldEqual, 100)
				So(report.Distribution, ShouldHaveLength, 5)
				So(report.TopCandidates, ShouldHaveLength, 2)
				So(report.TopCandidates[0].Name, ShouldEqual, "Alice")
				So(report.TopCandidates[1].Name, ShouldEqual, "Candidate")
			})
		})

		Convey("When generating questions", func() {
			generated, err := svc.Questions(ctx, assessment.ID)
			So(err, ShouldBeNil)

			Convey("Then counts follow the assessment's config", func() {
				So(generated, ShouldHaveLength, 4)
				So(generated[0].Type, ShouldEqual, "mcq")
				So(generated[3].Type, ShouldEqual, "coding")
			})
		})

		Convey("When reading stats", func() {
			stats := svc.GetStats()

			Convey("Then entity totals are reported", func() {
				So(stats["started"], ShouldEqual, true)
				So(stats["totalAssessments"], ShouldEqual, 1)
				So(stats["totalApplications"], ShouldEqual, 1)
				So(stats["totalSubmissions"], ShouldEqual, 2)
			})
		})
	})
}
