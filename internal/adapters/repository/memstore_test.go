package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	repository "github.com/iitg/jobassessment/internal/adapters/repository"
	"github.com/iitg/jobassessment/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestStore() *repository.MemStore {
	n := 0
	return repository.NewMemStore(
		repository.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		repository.WithClock(func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
}

func TestAssessmentCRUD(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := newTestStore()

		Convey("When creating an assessment", func() {
			created, err := store.CreateAssessment(ctx, model.Assessment{
				Title:          "Backend Engineer",
				Status:         model.AssessmentActive,
				RequiredSkills: []string{"go"},
				MinMatchScore:  70,
			})
			So(err, ShouldBeNil)

			Convey("Then it gets an id and creation time", func() {
				So(created.ID, ShouldEqual, "id-1")
				So(created.CreatedAt.IsZero(), ShouldBeFalse)
			})

			Convey("And it can be fetched and listed", func() {
				fetched, err := store.GetAssessment(ctx, created.ID)
				So(err, ShouldBeNil)
				So(fetched.Title, ShouldEqual, "Backend Engineer")

				all, err := store.ListAssessments(ctx)
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 1)
			})

			Convey("And saving a modified copy keeps the creation time", func() {
				modified := created
				modified.Title = "Senior Backend Engineer"
				So(store.SaveAssessment(ctx, modified), ShouldBeNil)

				fetched, err := store.GetAssessment(ctx, created.ID)
				So(err, ShouldBeNil)
				So(fetched.Title, ShouldEqual, "Senior Backend Engineer")
				So(fetched.CreatedAt, ShouldEqual, created.CreatedAt)
			})

			Convey("And the cached average score can be updated", func() {
				So(store.SetAvgScore(ctx, created.ID, 66), ShouldBeNil)
				fetched, _ := store.GetAssessment(ctx, created.ID)
				So(fetched.AvgScore, ShouldEqual, 66)
			})
		})

		Convey("When creating with out-of-range thresholds", func() {
			created, err := store.CreateAssessment(ctx, model.Assessment{
				Title:         "Clamped",
				MinMatchScore: 150,
				MinExperience: -3,
				QuestionConfig: &model.QuestionConfig{
					MCQCount: -1,
				},
			})
			So(err, ShouldBeNil)

			Convey("Then values are clamped at write time", func() {
				So(created.MinMatchScore, ShouldEqual, 100)
				So(created.MinExperience, ShouldEqual, 0)
				So(created.QuestionConfig.MCQCount, ShouldEqual, 0)
			})
		})

		Convey("When fetching unknown ids", func() {
			_, err := store.GetAssessment(ctx, "missing")
			So(err, ShouldEqual, repository.ErrNotFound)

			So(store.SaveAssessment(ctx, model.Assessment{ID: "missing"}), ShouldEqual, repository.ErrNotFound)
			So(store.SetAvgScore(ctx, "missing", 10), ShouldEqual, repository.ErrNotFound)
		})
	})
}

func TestApplicationUpsert(t *testing.T) {
	Convey("Given a store with an assessment", t, func() {
		ctx := context.Background()
		store := newTestStore()
		assessment, _ := store.CreateAssessment(ctx, model.Assessment{Title: "T"})

		Convey("When upserting a fresh application", func() {
			created, err := store.UpsertApplication(ctx, model.Application{
				AssessmentID: assessment.ID,
				CandidateID:  "c-1",
				Name:         "Alice",
				Score:        80,
			})
			So(err, ShouldBeNil)
			So(created.ID, ShouldNotBeEmpty)

			Convey("Then it is retrievable by (assessment, candidate)", func() {
				fetched, err := store.GetApplication(ctx, assessment.ID, "c-1")
				So(err, ShouldBeNil)
				So(fetched.Name, ShouldEqual, "Alice")
			})

			Convey("And upserting again replaces in place keeping id and order", func() {
				_, _ = store.UpsertApplication(ctx, model.Application{
					AssessmentID: assessment.ID,
					CandidateID:  "c-2",
					Name:         "Bob",
				})
				replaced, err := store.UpsertApplication(ctx, model.Application{
					AssessmentID: assessment.ID,
					CandidateID:  "c-1",
					Name:         "Alice Updated",
					Score:        90,
				})
				So(err, ShouldBeNil)
				So(replaced.ID, ShouldEqual, created.ID)

				rows, err := store.ListApplications(ctx, assessment.ID)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0].Name, ShouldEqual, "Alice Updated")
				So(rows[1].Name, ShouldEqual, "Bob")
			})
		})

		Convey("When nothing was applied", func() {
			_, err := store.GetApplication(ctx, assessment.ID, "nobody")
			So(err, ShouldEqual, repository.ErrNotFound)

			rows, err := store.ListApplications(ctx, assessment.ID)
			So(err, ShouldBeNil)
			So(rows, ShouldBeEmpty)
		})
	})
}

func TestSubmissionUpsert(t *testing.T) {
	Convey("Given a store with an assessment", t, func() {
		ctx := context.Background()
		store := newTestStore()
		assessment, _ := store.CreateAssessment(ctx, model.Assessment{Title: "T"})

		Convey("When upserting submissions", func() {
			_, err := store.UpsertSubmission(ctx, model.Submission{
				AssessmentID: assessment.ID,
				CandidateID:  "c-1",
				Score:        40,
				Result:       model.SubmissionFailed,
			})
			So(err, ShouldBeNil)

			replaced, err := store.UpsertSubmission(ctx, model.Submission{
				AssessmentID: assessment.ID,
				CandidateID:  "c-1",
				Score:        80,
				Result:       model.SubmissionPassed,
			})
			So(err, ShouldBeNil)
			So(replaced.SubmittedAt.IsZero(), ShouldBeFalse)

			Convey("Then the latest attempt wins", func() {
				fetched, err := store.GetSubmission(ctx, assessment.ID, "c-1")
				So(err, ShouldBeNil)
				So(fetched.Score, ShouldEqual, 80)

				rows, _ := store.ListSubmissions(ctx, assessment.ID)
				So(rows, ShouldHaveLength, 1)
			})
		})
	})
}

func TestCompletions(t *testing.T) {
	Convey("Given a store with an assessment", t, func() {
		ctx := context.Background()
		store := newTestStore()
		assessment, _ := store.CreateAssessment(ctx, model.Assessment{Title: "T"})

		Convey("When marking completions", func() {
			So(store.MarkAssessmentCompleted(ctx, assessment.ID, "c-1"), ShouldBeNil)
			So(store.MarkAssessmentCompleted(ctx, assessment.ID, "c-1"), ShouldBeNil) // idempotent
			So(store.MarkInterviewCompleted(ctx, assessment.ID, "c-1"), ShouldBeNil)

			Convey("Then they are visible per candidate", func() {
				done, err := store.AssessmentCompleted(ctx, assessment.ID, "c-1")
				So(err, ShouldBeNil)
				So(done, ShouldBeTrue)

				done, err = store.InterviewCompleted(ctx, assessment.ID, "c-1")
				So(err, ShouldBeNil)
				So(done, ShouldBeTrue)

				done, _ = store.AssessmentCompleted(ctx, assessment.ID, "c-2")
				So(done, ShouldBeFalse)
			})
		})

		Convey("When marking against an unknown assessment", func() {
			So(store.MarkAssessmentCompleted(ctx, "missing", "c-1"), ShouldEqual, repository.ErrNotFound)
			So(store.MarkInterviewCompleted(ctx, "missing", "c-1"), ShouldEqual, repository.ErrNotFound)
		})
	})
}

func TestCounts(t *testing.T) {
	Convey("Given a populated store", t, func() {
		ctx := context.Background()
		store := newTestStore()
		assessment, _ := store.CreateAssessment(ctx, model.Assessment{Title: "T"})
		_, _ = store.UpsertApplication(ctx, model.Application{AssessmentID: assessment.ID, CandidateID: "c-1"})
		_, _ = store.UpsertSubmission(ctx, model.Submission{AssessmentID: assessment.ID, CandidateID: "c-1"})

		Convey("When reading counts", func() {
			assessments, applications, submissions := store.Counts(ctx)

			Convey("Then totals match stored rows", func() {
				So(assessments, ShouldEqual, 1)
				So(applications, ShouldEqual, 1)
				So(submissions, ShouldEqual, 1)
			})
		})
	})
}
