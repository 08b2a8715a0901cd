package analytics_test

import (
	"testing"

	analytics "github.com/iitg/jobassessment/internal/domain/analytics"
	"github.com/iitg/jobassessment/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTopCandidates(t *testing.T) {
	Convey("Given the top-candidate ranker", t, func() {
		Convey("When scores tie and an application is missing", func() {
			submissions := []model.Submission{
				{CandidateID: "A", Score: 90},
				{CandidateID: "B", Score: 90},
				{CandidateID: "C", Score: 70},
			}
			applications := []model.Application{
				{CandidateID: "A", Name: "Alice", Email: "alice@example.com"},
				{CandidateID: "C", Name: "Carol", Email: "carol@example.com"},
			}

			entries := analytics.TopCandidates(submissions, applications)

			Convey("Then ties keep input order and missing applications get placeholders", func() {
				So(len(entries), ShouldEqual, 3)

				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].CandidateID, ShouldEqual, "A")
				So(entries[0].Name, ShouldEqual, "Alice")

				So(entries[1].Rank, ShouldEqual, 2)
				So(entries[1].CandidateID, ShouldEqual, "B")
				So(entries[1].Name, ShouldEqual, "Candidate")
				So(entries[1].Email, ShouldEqual, "-")

				So(entries[2].Rank, ShouldEqual, 3)
				So(entries[2].CandidateID, ShouldEqual, "C")
				So(entries[2].Email, ShouldEqual, "carol@example.com")
			})
		})

		Convey("When more than five submissions exist", func() {
			submissions := make([]model.Submission, 8)
			for i := range submissions {
				submissions[i] = model.Submission{CandidateID: string(rune('a' + i)), Score: i * 10}
			}

			entries := analytics.TopCandidates(submissions, nil)

			Convey("Then at most five are returned, scores non-increasing, ranks contiguous", func() {
				So(len(entries), ShouldEqual, 5)
				for i, entry := range entries {
					So(entry.Rank, ShouldEqual, i+1)
					if i > 0 {
						So(entry.Score, ShouldBeLessThanOrEqualTo, entries[i-1].Score)
					}
				}
				So(entries[0].Score, ShouldEqual, 70)
			})
		})

		Convey("When there are no submissions", func() {
			So(analytics.TopCandidates(nil, nil), ShouldBeEmpty)
		})

		Convey("When ranking runs", func() {
			submissions := []model.Submission{
				{CandidateID: "B", Score: 10},
				{CandidateID: "A", Score: 90},
			}
			original := []model.Submission{
				{CandidateID: "B", Score: 10},
				{CandidateID: "A", Score: 90},
			}

			analytics.TopCandidates(submissions, nil)

			Convey("Then the input slice is not reordered", func() {
				So(submissions, ShouldResemble, original)
			})
		})
	})
}
