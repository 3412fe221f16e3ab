package mutate

import (
	"strings"
	"testing"

	"github.com/medilink/api/internal/testutil"
	"github.com/medilink/api/internal/utils"
)

func TestProfileUpdateValidation(t *testing.T) {
	t.Parallel()

	valid := UserProfileUpdate{
		Specialization:     utils.PointerOf("Trauma"),
		YearsOfExperience:  utils.PointerOf(12),
		Certifications:     []string{"Basic Life Support", "Paramedic Certification"},
		AvailabilityStatus: utils.PointerOf("On Call"),
	}
	testutil.IsNil(t, valid.Validate(), "valid profile passes")

	empty := UserProfileUpdate{}
	testutil.IsNil(t, empty.Validate(), "empty update passes")

	badSpec := UserProfileUpdate{Specialization: utils.PointerOf("Astrology")}
	testutil.IsNotNil(t, badSpec.Validate(), "unknown specialization rejected")

	badYears := UserProfileUpdate{YearsOfExperience: utils.PointerOf(-1)}
	testutil.IsNotNil(t, badYears.Validate(), "negative experience rejected")

	badCert := UserProfileUpdate{Certifications: []string{"Basic Life Support", "Wizardry"}}
	testutil.IsNotNil(t, badCert.Validate(), "unknown certification rejected")

	badStatus := UserProfileUpdate{AvailabilityStatus: utils.PointerOf("Asleep")}
	testutil.IsNotNil(t, badStatus.Validate(), "unknown availability status rejected")
}

func TestProfileUpdateCollectsEveryFailure(t *testing.T) {
	t.Parallel()

	update := UserProfileUpdate{
		Specialization:     utils.PointerOf("Astrology"),
		YearsOfExperience:  utils.PointerOf(99),
		AvailabilityStatus: utils.PointerOf("Asleep"),
	}

	err := update.Validate()
	testutil.IsNotNil(t, err, "invalid profile rejected")

	// Every bad field is reported, not just the first.
	msg := err.Error()
	testutil.Assert(t, true, strings.Contains(msg, "specialization"), "specialization failure reported")
	testutil.Assert(t, true, strings.Contains(msg, "experience"), "experience failure reported")
	testutil.Assert(t, true, strings.Contains(msg, "availability status"), "status failure reported")
}
