package datetime_test

import (
	"fmt"

	"github.com/pratik-mahalle/calendrical/internal/testutil"
	"github.com/pratik-mahalle/calendrical/pkg/datetime"
)

func ExampleLocalDate_Plus() {
	d := datetime.MustLocalDate(2021, datetime.January, 31)
	next, err := d.Plus(1, datetime.UnitMonth)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(next)
	// Output: 2021-02-28
}

func ExampleLocalDate_PeriodUntil() {
	start := datetime.MustLocalDate(2021, datetime.January, 1)
	end := datetime.MustLocalDate(2021, datetime.March, 15)
	fmt.Println(start.PeriodUntil(end))
	// Output: P2M14D
}

func ExampleTimeZone_ResolveLocal() {
	zones := datetime.NewZones(testutil.NewMockZoneRules())
	zone, err := zones.Of(testutil.ZoneSpring)
	if err != nil {
		fmt.Println(err)
		return
	}

	// 02:30 does not exist on the morning clocks go forward
	dt := datetime.MustLocalDateTime(2021, datetime.March, 28, 2, 30, 0, 0)
	zdt, err := zone.ResolveLocal(dt, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(zdt)
	fmt.Println(zdt.ToInstant())
	// Output:
	// 2021-03-28T03:30+02:00[Test/Spring]
	// 2021-03-28T01:30:00Z
}

func ExampleInstant_PeriodUntil() {
	zone, err := datetime.NewZones(testutil.NewMockZoneRules()).Of("UTC+05:30")
	if err != nil {
		fmt.Println(err)
		return
	}
	start, _ := datetime.ParseInstant("2021-01-31T10:00+05:30")
	end, _ := datetime.ParseInstant("2021-03-01T09:00+05:30")

	p, err := start.PeriodUntil(end, zone)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	// Output: P28DT23H
}

func ExampleInstant_Plus() {
	fmt.Println(datetime.MaxInstant.Plus(datetime.Seconds(1)) == datetime.MaxInstant)
	// Output: true
}
