package duration

import (
	"regexp"
	"strings"
)

var wsOrUnderscoreRun = regexp.MustCompile(`[_\s]+`)
var installPattern = regexp.MustCompile(`(?i)_Install_([A-Za-z0-9_]+)`)
var civilWorksPattern = regexp.MustCompile(`(?i)(^|_)civil[_ ]works($|_)`)
var setPattern = regexp.MustCompile(`(?i)_Set_([A-Za-z0-9_]+)`)

// moduleSubtypePatterns is evaluated in order; the first match wins.
// Pre-compiled once at package init per spec.md §9 — order is semantic
// and must not be reshuffled.
var moduleSubtypePatterns = []struct {
	subtype string
	re      *regexp.Regexp
}{
	{"module_valve", regexp.MustCompile(`(^|[-_])V\d+($|[-_])|FV-\d+|PV-\d+`)},
	{"module_ahu", regexp.MustCompile(`\bAHU\b`)},
	{"module_transformer", regexp.MustCompile(`XFMER|XFMR|TRANSFORMER`)},
	{"module_switchgear", regexp.MustCompile(`SWITCHGEAR|SWGR|GEAR|MCC|PANEL\b|\bMV\b|\bLV\b`)},
	{"module_vaporizer_heater", regexp.MustCompile(`VAPORIZ(ER|OR)|HEATER|TRIM HEATER|STEAM SPARGED`)},
	{"module_compressor", regexp.MustCompile(`COMPRESSOR|BOOSTER`)},
	{"module_tank", regexp.MustCompile(`TANK|STORAGE|BUFFER|DUMP`)},
	{"module_vessel", regexp.MustCompile(`VESSEL|ADSORBER|SILENCER\b`)},
	{"module_crane", regexp.MustCompile(`CRANE`)},
	{"module_weighscale", regexp.MustCompile(`WEIGH|SCALE`)},
	{"module_motor_pump_fan", regexp.MustCompile(`MAC|BAC|PUMP|FAN`)},
	{"module_building_equipment", regexp.MustCompile(`BUILDING`)},
}

// ExtractType classifies an activity's Element Name into a construction
// Type, per spec.md §4.2. For an _Install_ name, the captured words
// (underscores read as spaces) are matched against the install type
// table, longest leading run first, so trailing tokens such as
// "_Install_Concrete_A" still yield "Concrete"; when no leading run is
// a known type, the whole capture is returned. The second return value
// reports whether the name matched the Set_* (Equipment) pattern.
func ExtractType(name string) (actType string, isSet bool) {
	if name == "" {
		return "", false
	}
	norm := wsOrUnderscoreRun.ReplaceAllString(strings.TrimSpace(name), "_")

	if m := installPattern.FindStringSubmatch(norm); m != nil {
		words := strings.Fields(strings.ReplaceAll(m[1], "_", " "))
		for n := len(words); n > 0; n-- {
			if cand := strings.Join(words[:n], " "); installExponents[cand] != 0 {
				return cand, false
			}
		}
		return strings.Join(words, " "), false
	}
	if civilWorksPattern.MatchString(norm) {
		return "Civil Works", false
	}
	if setPattern.MatchString(norm) {
		return "Equipment", true
	}
	return "", false
}

// moduleSubtype classifies a Set_* equipment name into a sub-type
// bucket. Order is semantic: the first matching pattern wins, exactly
// as original_source/dataProc/services/duration_service.py evaluates
// its if/elif chain.
func moduleSubtype(name string) string {
	if name == "" {
		return "module_other"
	}
	s := strings.ToUpper(name)
	for _, p := range moduleSubtypePatterns {
		if p.re.MatchString(s) {
			return p.subtype
		}
	}
	return "module_other"
}
