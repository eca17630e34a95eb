package duration

// bounds is an inclusive [min, max] clamp range in days.
type bounds struct{ min, max float64 }

// installExponents are the power-law exponents applied to the relative
// metric (metric / median-for-type) for each Install_* type.
var installExponents = map[string]float64{
	"Concrete":          0.90,
	"Grout":             0.80,
	"Piling":            0.80,
	"Cable Tray":        0.60,
	"Electrical":        0.50,
	"Instrumentation":   0.50,
	"Piping":            0.70,
	"Piping Insulation": 0.65,
	"UG Conduit":        0.70,
	"Transformer":       0.50,
	"Civil Works":       0.90,
}

// installBaseDays is the duration (days) at the type's median metric
// value, before clamping and the final 1.5x/ceil pass.
var installBaseDays = map[string]float64{
	"Concrete":          3.0,
	"Grout":             0.5,
	"Piling":            2.0,
	"Cable Tray":        3.0,
	"Electrical":        5.0,
	"Instrumentation":   4.0,
	"Piping":            4.0,
	"Piping Insulation": 3.0,
	"UG Conduit":        3.0,
	"Transformer":       1.5,
	"Civil Works":       3.0,
}

var installBounds = map[string]bounds{
	"Concrete":          {0.5, 10.0},
	"Civil Works":       {0.5, 10.0},
	"Grout":             {0.25, 2.0},
	"Piling":            {0.5, 8.0},
	"Piping":            {1.0, 10.0},
	"Piping Insulation": {0.5, 8.0},
	"Cable Tray":        {0.5, 8.0},
	"UG Conduit":        {1.0, 8.0},
	"Electrical":        {1.0, 12.0},
	"Instrumentation":   {1.0, 10.0},
	"Transformer":       {0.5, 5.0},
}

var defaultInstallBounds = bounds{0.25, 15.0}

var equipSubtypeBaseDays = map[string]float64{
	"module_valve":              0.5,
	"module_motor_pump_fan":     1.5,
	"module_ahu":                1.5,
	"module_transformer":        1.5,
	"module_switchgear":         2.0,
	"module_vessel":             2.0,
	"module_tank":               2.5,
	"module_vaporizer_heater":   2.0,
	"module_compressor":         2.5,
	"module_crane":              1.0,
	"module_weighscale":         1.0,
	"module_building_equipment": 3.0,
	"module_other":              1.5,
}

var equipSubtypeExponent = map[string]float64{
	"module_valve":              0.40,
	"module_motor_pump_fan":     0.50,
	"module_ahu":                0.50,
	"module_transformer":        0.50,
	"module_switchgear":         0.60,
	"module_vessel":             0.60,
	"module_tank":               0.60,
	"module_vaporizer_heater":   0.60,
	"module_compressor":         0.60,
	"module_crane":              0.40,
	"module_weighscale":         0.40,
	"module_building_equipment": 0.60,
	"module_other":              0.50,
}

var equipBounds = bounds{0.25, 7.0}

// volumeTypes, runTypes, areaTypes select the geometry metric used for
// the power-law scaling of each Install_* type, per spec.md §4.2.
var volumeTypes = map[string]bool{"Concrete": true, "Grout": true, "Civil Works": true, "Transformer": true}
var runTypes = map[string]bool{"Piping": true, "Piping Insulation": true, "Cable Tray": true, "UG Conduit": true}
var areaTypes = map[string]bool{"Electrical": true, "Instrumentation": true}

func clamp(v float64, b bounds) float64 {
	if v < b.min {
		return b.min
	}
	if v > b.max {
		return b.max
	}
	return v
}
