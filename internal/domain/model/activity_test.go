package model_test

import (
	"testing"

	model "github.com/mergington/activities/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestActivity(t *testing.T) {
	convey.Convey("Given an Activity with a roster", t, func() {
		act := model.Activity{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}

		convey.Convey("HasParticipant finds enrolled emails", func() {
			convey.So(act.HasParticipant("michael@mergington.edu"), convey.ShouldBeTrue)
			convey.So(act.HasParticipant("daniel@mergington.edu"), convey.ShouldBeTrue)
		})

		convey.Convey("HasParticipant rejects unknown emails", func() {
			convey.So(act.HasParticipant("nobody@mergington.edu"), convey.ShouldBeFalse)
			convey.So(act.HasParticipant(""), convey.ShouldBeFalse)
		})

		convey.Convey("Clone detaches the roster slice", func() {
			cp := act.Clone()
			cp.Participants[0] = "someoneelse@mergington.edu"

			convey.So(act.Participants[0], convey.ShouldEqual, "michael@mergington.edu")
			convey.So(cp.MaxParticipants, convey.ShouldEqual, act.MaxParticipants)
		})
	})

	convey.Convey("Given a zero-value Activity", t, func() {
		var act model.Activity

		convey.Convey("Then lookups behave and Clone yields an empty roster", func() {
			convey.So(act.HasParticipant("anyone@mergington.edu"), convey.ShouldBeFalse)
			convey.So(act.Clone().Participants, convey.ShouldBeEmpty)
		})
	})
}
