package scoring_test

import (
	"testing"

	"github.com/iitg/jobassessment/internal/domain/model"
	scoring "github.com/iitg/jobassessment/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassifyApplication(t *testing.T) {
	Convey("Given the application classifier", t, func() {
		Convey("When the score clears or meets the threshold", func() {
			So(scoring.ClassifyApplication(80, 70), ShouldEqual, model.ApplicationShortlisted)
			So(scoring.ClassifyApplication(70, 70), ShouldEqual, model.ApplicationShortlisted)
		})

		Convey("When the score is below the threshold", func() {
			So(scoring.ClassifyApplication(69, 70), ShouldEqual, model.ApplicationRejected)
			So(scoring.ClassifyApplication(0, 1), ShouldEqual, model.ApplicationRejected)
		})

		Convey("When the threshold is zero", func() {
			So(scoring.ClassifyApplication(0, 0), ShouldEqual, model.ApplicationShortlisted)
		})
	})
}

func TestClassifySubmission(t *testing.T) {
	Convey("Given the submission classifier", t, func() {
		Convey("When the score meets the fixed threshold", func() {
			So(scoring.ClassifySubmission(60), ShouldEqual, model.SubmissionPassed)
			So(scoring.ClassifySubmission(100), ShouldEqual, model.SubmissionPassed)
		})

		Convey("When the score is below the threshold", func() {
			So(scoring.ClassifySubmission(59), ShouldEqual, model.SubmissionFailed)
			So(scoring.ClassifySubmission(0), ShouldEqual, model.SubmissionFailed)
		})
	})
}
