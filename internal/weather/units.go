package weather

// Conversion factors to the canonical units (m/s, °C, meters, km).
const (
	kmhToMS  = 1.0 / 3.6
	knToMS   = 0.514444
	mphToMS  = 0.44704
	ftToM    = 0.3048
	mToKM    = 0.001
)

// Normalize converts an observation from the given source units into the
// canonical units. Observations already in canonical units (zero Units)
// pass through unchanged. Nil fields stay nil.
func Normalize(obs Observation, units Units) Observation {
	out := obs

	if f, ok := speedFactor(units.Speed); ok {
		out.WindSpeed = scale(obs.WindSpeed, f)
		out.Gust = scale(obs.Gust, f)
	}

	if units.Temperature == TempFahrenheit {
		out.Temperature = fahrenheitToCelsius(obs.Temperature)
		out.WaterTemperature = fahrenheitToCelsius(obs.WaterTemperature)
	}

	if units.WaveHeight == DistFeet {
		out.WaveHeight = scale(obs.WaveHeight, ftToM)
	}

	if units.Visibility == DistMeters {
		out.Visibility = scale(obs.Visibility, mToKM)
	}

	return out
}

func speedFactor(u SpeedUnit) (float64, bool) {
	switch u {
	case SpeedKMH:
		return kmhToMS, true
	case SpeedKN:
		return knToMS, true
	case SpeedMPH:
		return mphToMS, true
	default:
		return 0, false
	}
}

func scale(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * factor
	return &scaled
}

func fahrenheitToCelsius(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := (*v - 32) * 5 / 9
	return &c
}
