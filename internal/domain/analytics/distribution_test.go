package analytics_test

import (
	"testing"

	analytics "github.com/iitg/jobassessment/internal/domain/analytics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDistribution(t *testing.T) {
	Convey("Given the distribution builder", t, func() {
		Convey("When bucketing boundary scores", func() {
			buckets := analytics.Distribution([]int{20, 21, 40, 41, 60, 61, 80, 81, 100})

			Convey("Then upper bounds are inclusive", func() {
				So(len(buckets), ShouldEqual, 5)
				So(buckets[0].Range, ShouldEqual, "0-20")
				So(buckets[0].Count, ShouldEqual, 1)
				So(buckets[1].Range, ShouldEqual, "21-40")
				So(buckets[1].Count, ShouldEqual, 2)
				So(buckets[2].Range, ShouldEqual, "41-60")
				So(buckets[2].Count, ShouldEqual, 2)
				So(buckets[3].Range, ShouldEqual, "61-80")
				So(buckets[3].Count, ShouldEqual, 2)
				So(buckets[4].Range, ShouldEqual, "81-100")
				So(buckets[4].Count, ShouldEqual, 2)
			})
		})

		Convey("When there are no scores", func() {
			buckets := analytics.Distribution(nil)

			Convey("Then all five labeled buckets are still emitted", func() {
				So(len(buckets), ShouldEqual, 5)
				for i, label := range []string{"0-20", "21-40", "41-60", "61-80", "81-100"} {
					So(buckets[i].Range, ShouldEqual, label)
					So(buckets[i].Count, ShouldEqual, 0)
				}
			})
		})

		Convey("When bucketing any score set", func() {
			scores := []int{0, 7, 20, 33, 55, 60, 61, 99, 100, 100}
			buckets := analytics.Distribution(scores)

			Convey("Then counts sum to the number of scores", func() {
				total := 0
				for _, bucket := range buckets {
					So(bucket.Count, ShouldBeGreaterThanOrEqualTo, 0)
					total += bucket.Count
				}
				So(total, ShouldEqual, len(scores))
			})
		})
	})
}
