package entity

import "time"

// Train carries the timetable data the matcher needs to resolve a
// reservation window. External entity, referenced not owned.
// DepartureTime and ArrivalTime hold clock times; the calendar day comes
// from Date (or from the waiting order).
type Train struct {
	ID             uint64
	ModelID        uint64
	Date           time.Time
	DepartureTime  time.Time
	ArrivalTime    time.Time
	StartStationID uint64
	EndStationID   uint64
}

// IsOrigin reports whether the station is the train's first stop
func (t *Train) IsOrigin(stationID uint64) bool {
	return t.StartStationID == stationID
}

// IsTerminus reports whether the station is the train's last stop
func (t *Train) IsTerminus(stationID uint64) bool {
	return t.EndStationID == stationID
}

// TrainStop is one scheduled intermediate stop of a train
type TrainStop struct {
	ID          uint64
	TrainID     uint64
	StationID   uint64
	ArrivalTime time.Time
}

// CombineDateTime merges a calendar day with a clock time into one instant
func CombineDateTime(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		date.Location(),
	)
}
