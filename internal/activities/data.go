package activities

import "time"

// builtin is the shipped activity catalog. Clause ranges are authored in the
// engine's canonical units: speeds m/s, temperatures °C, wave height meters,
// visibility km, precipitation mm.
var builtin = []Definition{
	{
		ID:               "surfing",
		Name:             "Surfing",
		Category:         "watersports",
		WeatherSensitive: true,
		Tags:             []string{"ocean", "board", "waves"},
		Perfect: []string{
			"waveHeight=0.8..2.5 & swellPeriod=10..16",
			"windRelative=offshore & windSpeed<8",
		},
		Good: []string{
			"waveHeight=0.6..3 & swellPeriod=8..18",
			"windRelative=side-offshore & windSpeed<8",
		},
		Fair: []string{
			"waveHeight=0.4..3.5 & windSpeed<12",
		},
		Poor: []string{
			"windRelative=onshore & windSpeed>10",
			"waveHeight<0.4 or waveHeight>4",
			"windSpeed>14",
			"gust>18",
		},
		IndoorAlternative:        "pool-swimming",
		UsesWindRelative:         true,
		RequiresBeachOrientation: true,
	},
	{
		ID:               "kitesurfing",
		Name:             "Kitesurfing",
		Category:         "watersports",
		WeatherSensitive: true,
		Tags:             []string{"ocean", "wind", "kite"},
		Perfect: []string{
			"windRelative=side-onshore & windSpeed=8..14",
			"windRelative=cross-shore & windSpeed=9..13 & gust<18",
		},
		Good: []string{
			"windRelative=side-onshore or cross-shore & windSpeed=6..16",
		},
		Fair: []string{
			"windSpeed=6..18 & waveHeight<3",
		},
		Poor: []string{
			"windRelative=offshore",
			"windSpeed<5 or windSpeed>20",
			"gust>22",
		},
		UsesWindRelative:         true,
		RequiresBeachOrientation: true,
	},
	{
		ID:               "windsurfing",
		Name:             "Windsurfing",
		Category:         "watersports",
		WeatherSensitive: true,
		Tags:             []string{"ocean", "wind", "board"},
		Perfect: []string{
			"windRelative=side-onshore & windSpeed=9..15 & gust<20",
		},
		Good: []string{
			"windSpeed=7..17 & waveHeight<2.5",
		},
		Fair: []string{
			"windSpeed=5..18",
		},
		Poor: []string{
			"windRelative=offshore & windSpeed>12",
			"windSpeed<4 or windSpeed>22",
		},
		UsesWindRelative:         true,
		RequiresBeachOrientation: true,
	},
	{
		ID:               "sea-kayaking",
		Name:             "Sea Kayaking",
		Category:         "watersports",
		WeatherSensitive: true,
		Tags:             []string{"ocean", "paddle"},
		SeasonalMonths: []time.Month{
			time.April, time.May, time.June, time.July,
			time.August, time.September, time.October,
		},
		Perfect: []string{
			"windSpeed<4 & waveHeight<0.5 & visibility>8",
		},
		Good: []string{
			"windSpeed<6 & waveHeight<0.8",
		},
		Fair: []string{
			"windSpeed<8 & waveHeight<1.2",
		},
		Poor: []string{
			"windSpeed>10",
			"waveHeight>1.5",
			"visibility<2",
		},
	},
	{
		ID:                "beach-volleyball",
		Name:              "Beach Volleyball",
		Category:          "beach",
		SecondaryCategory: "team",
		WeatherSensitive:  true,
		Tags:              []string{"sand", "social"},
		SeasonalMonths: []time.Month{
			time.May, time.June, time.July, time.August, time.September,
		},
		Perfect: []string{
			"temperature=20..28 & windSpeed<5 & precipitation<0.2",
		},
		Good: []string{
			"temperature=17..31 & windSpeed<7",
		},
		Fair: []string{
			"temperature=14..33 & precipitation<2",
		},
		Poor: []string{
			"windSpeed>9",
			"precipitation>4",
			"uvIndex>9",
		},
		IndoorAlternative: "indoor-volleyball",
	},
	{
		ID:               "hiking",
		Name:             "Hiking",
		Category:         "trail",
		WeatherSensitive: true,
		Tags:             []string{"mountain", "endurance"},
		Perfect: []string{
			"temperature=10..22 & precipitation<0.5 & visibility>10 & windSpeed<7",
		},
		Good: []string{
			"temperature=5..26 & precipitation<2 & visibility>5",
		},
		Fair: []string{
			"temperature=0..30 & precipitation<5",
		},
		Poor: []string{
			"visibility<1",
			"precipitation>10",
			"windSpeed>17",
			"temperature<-10 or temperature>35",
		},
		IndoorAlternative: "climbing-gym",
	},
	{
		ID:               "trail-running",
		Name:             "Trail Running",
		Category:         "trail",
		WeatherSensitive: true,
		Tags:             []string{"endurance", "running"},
		Perfect: []string{
			"temperature=8..18 & humidity<70 & precipitation<0.5",
		},
		Good: []string{
			"temperature=3..24 & humidity<85",
		},
		Fair: []string{
			"temperature=-2..28",
		},
		Poor: []string{
			"temperature>32",
			"precipitation>8",
			"windSpeed>15",
		},
		IndoorAlternative: "treadmill",
	},
	{
		ID:               "road-cycling",
		Name:             "Road Cycling",
		Category:         "road",
		WeatherSensitive: true,
		Tags:             []string{"endurance", "bike"},
		Perfect: []string{
			"temperature=14..24 & windSpeed<5 & precipitation<0.2",
		},
		Good: []string{
			"temperature=8..28 & windSpeed<8 & precipitation<1",
		},
		Fair: []string{
			"temperature=2..32 & windSpeed<11",
		},
		Poor: []string{
			"precipitation>4",
			"windSpeed>13",
			"gust>18",
			"visibility<2",
		},
		IndoorAlternative: "spin-class",
	},
	{
		ID:                "picnic",
		Name:              "Picnic",
		Category:          "leisure",
		SecondaryCategory: "social",
		WeatherSensitive:  true,
		Tags:              []string{"park", "family"},
		SeasonalMonths: []time.Month{
			time.April, time.May, time.June, time.July,
			time.August, time.September, time.October,
		},
		Perfect: []string{
			"temperature=18..26 & windSpeed<4 & precipitation<0.1 & cloudCover<40",
		},
		Good: []string{
			"temperature=14..29 & windSpeed<6 & precipitation<0.5",
		},
		Fair: []string{
			"temperature=10..32 & precipitation<2",
		},
		Poor: []string{
			"precipitation>3",
			"windSpeed>9",
			"uvIndex>9",
		},
	},
	{
		ID:               "gardening",
		Name:             "Gardening",
		Category:         "leisure",
		WeatherSensitive: true,
		Tags:             []string{"garden", "home"},
		SeasonalMonths: []time.Month{
			time.March, time.April, time.May, time.June, time.July,
			time.August, time.September, time.October,
		},
		Perfect: []string{
			"temperature=12..24 & soilMoisture=0.15..0.35 & precipitation<0.5",
		},
		Good: []string{
			"temperature=8..28 & soilMoisture=0.1..0.4",
		},
		Fair: []string{
			"temperature=4..31 & precipitation<3",
		},
		Poor: []string{
			"precipitation>6",
			"soilMoisture>0.45",
			"temperature<0",
		},
	},
	{
		ID:               "outdoor-ice-skating",
		Name:             "Outdoor Ice Skating",
		Category:         "winter",
		WeatherSensitive: true,
		Tags:             []string{"ice", "family"},
		SeasonalMonths: []time.Month{
			time.November, time.December, time.January, time.February, time.March,
		},
		Perfect: []string{
			"temperature=-12..-2 & windSpeed<10",
			"cloudCover<40 & temperature<-1 & visibility>8",
		},
		Good: []string{
			"temperature=-15..0 & windSpeed<12",
		},
		Fair: []string{
			"temperature=-20..1",
		},
		Poor: []string{
			"temperature>2",
			"windSpeed>14",
			"snowfallRateMmH>2",
		},
		IndoorAlternative: "indoor-rink",
	},
	{
		ID:               "cross-country-skiing",
		Name:             "Cross-Country Skiing",
		Category:         "winter",
		WeatherSensitive: true,
		Tags:             []string{"snow", "endurance"},
		SeasonalMonths: []time.Month{
			time.December, time.January, time.February, time.March,
		},
		Perfect: []string{
			"temperature=-10..-2 & snowDepthCm>20 & windSpeed<6",
		},
		Good: []string{
			"temperature=-15..0 & snowDepthCm>10",
		},
		Fair: []string{
			"temperature=-20..2 & snowDepthCm>5",
		},
		Poor: []string{
			"snowDepthCm<5",
			"temperature>4",
			"windSpeed>12",
			"snowfallRateMmH>4",
		},
	},
	{
		ID:               "snowshoeing",
		Name:             "Snowshoeing",
		Category:         "winter",
		WeatherSensitive: true,
		Tags:             []string{"snow", "trail"},
		SeasonalMonths: []time.Month{
			time.December, time.January, time.February, time.March,
		},
		Perfect: []string{
			"temperature=-8..0 & snowDepthCm>15 & visibility>5",
		},
		Good: []string{
			"temperature=-12..2 & snowDepthCm>10",
		},
		Fair: []string{
			"temperature=-18..4 & snowDepthCm>8",
		},
		Poor: []string{
			"snowDepthCm<8",
			"visibility<1",
			"windSpeed>14",
		},
	},
	{
		ID:               "stargazing",
		Name:             "Stargazing",
		Category:         "leisure",
		WeatherSensitive: true,
		Tags:             []string{"night", "sky"},
		Perfect: []string{
			"isNight=true & cloudCover<10 & visibility>15 & windSpeed<4",
		},
		Good: []string{
			"isNight=true & cloudCover<30 & visibility>8",
		},
		Fair: []string{
			"isNight=true & cloudCover<60",
		},
		Poor: []string{
			"isNight=false",
			"cloudCover>80",
			"precipitation>0.5",
		},
	},
	{
		ID:               "museum-visit",
		Name:             "Museum Visit",
		Category:         "indoor",
		WeatherSensitive: false,
		Tags:             []string{"culture", "family"},
	},
}
