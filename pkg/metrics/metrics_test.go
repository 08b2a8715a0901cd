package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "jobassessment")
				So(manager.subsystem, ShouldEqual, "api")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(registry),
			)

			Convey("Then options should be applied", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "test-namespace")
				So(manager.subsystem, ShouldEqual, "test-subsystem")
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording domain metrics", func() {
			Convey("Then helpers should not panic", func() {
				So(func() {
					RecordApplicationScored("shortlisted")
					RecordSubmissionGraded("passed")
					RecordAnalyticsBuilt()
					RecordRefreshProcessed()
					RecordRefreshCoalesced()
					RecordRefreshError()
					UpdateQueueSize(3)
					UpdateQueueCapacity(100)
					UpdateWorkerCount(4)
					UpdateTotalAssessments(1)
					UpdateTotalApplications(2)
					UpdateTotalSubmissions(2)
					RecordHTTPRequest("analytics", "GET", "200")
					RecordHTTPRequestDuration("analytics", "GET", "200", 1.5)
				}, ShouldNotPanic)
			})
		})

		Convey("When reading the registry", func() {
			Convey("Then it should be gatherable", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
