package vitals

import "github.com/summit-health/backend/internal/models"

// metricLabels are the display names used inside insight summaries.
var metricLabels = map[models.MetricKind]string{
	models.MetricBodyBattery:      "body battery",
	models.MetricSleepScore:       "sleep score",
	models.MetricSleepDuration:    "sleep duration",
	models.MetricDeepSleep:        "deep sleep",
	models.MetricRemSleep:         "REM sleep",
	models.MetricStress:           "stress level",
	models.MetricRestingHR:        "resting heart rate",
	models.MetricHRV:              "heart rate variability",
	models.MetricIntensityMinutes: "intensity minutes",
	models.MetricSteps:            "daily steps",
}

var timeframePhrases = map[models.Timeframe]string{
	models.Timeframe7d:   "the past week",
	models.Timeframe14d:  "the past two weeks",
	models.Timeframe30d:  "the past month",
	models.Timeframe90d:  "the past three months",
	models.Timeframe180d: "the past six months",
	models.Timeframe365d: "the past year",
}

// guidance pairs the "why it matters" text with concrete follow-up
// actions for one metric kind moving in one direction.
type guidance struct {
	Rationale string
	Actions   []string
}

// Stable trends get one reassurance regardless of metric.
const (
	stableRationale = "Holding steady is a win. Nothing here needs intervention."
	stableAction    = "Keep doing what is working."
)

// trendGuidance covers every metric kind for the improving and
// declining directions. Coverage is enforced by tests, so a new metric
// kind cannot ship without rationale and actions.
var trendGuidance = map[models.MetricKind]map[models.TrendDirection]guidance{
	models.MetricBodyBattery: {
		models.DirectionImproving: {
			Rationale: "Your energy reserves are recharging better, which usually means training load and recovery are in balance.",
			Actions: []string{
				"Hold your current training load",
				"Keep your sleep schedule consistent",
				"Note what changed recently so you can repeat it",
			},
		},
		models.DirectionDeclining: {
			Rationale: "Falling energy reserves suggest you are draining faster than you recharge, an early sign of accumulating fatigue.",
			Actions: []string{
				"Cut back one hard session this week",
				"Swap one intense workout for a 20-minute walk",
				"Move your bedtime 30 minutes earlier",
				"Check whether alcohol or late meals crept back in",
			},
		},
	},
	models.MetricSleepScore: {
		models.DirectionImproving: {
			Rationale: "Better sleep quality compounds into everything else: recovery, mood, and next-day energy.",
			Actions: []string{
				"Protect the routine that got you here",
				"Keep your wake time fixed, even on weekends",
				"Write down what you changed so it sticks",
			},
		},
		models.DirectionDeclining: {
			Rationale: "Sleep quality is slipping, and it drags recovery and daytime energy down with it.",
			Actions: []string{
				"Set a consistent bedtime and hold it for a week",
				"Cut screens for the hour before bed",
				"Cool the bedroom a few degrees",
				"Stop caffeine after early afternoon",
			},
		},
	},
	models.MetricSleepDuration: {
		models.DirectionImproving: {
			Rationale: "More time asleep gives your body a longer repair window every night.",
			Actions: []string{
				"Keep the earlier bedtime that bought you this time",
				"Guard the last hour of the evening from work",
				"Avoid late-night eating that cuts into sleep",
			},
		},
		models.DirectionDeclining: {
			Rationale: "You are sleeping less, and a shrinking sleep window is the fastest way to erode recovery.",
			Actions: []string{
				"Set a bedtime alarm one hour before lights out",
				"Push morning commitments later where you can",
				"Drop the late-evening screen session",
				"Keep weekend catch-up sleep modest so the rhythm holds",
			},
		},
	},
	models.MetricDeepSleep: {
		models.DirectionImproving: {
			Rationale: "Deep sleep is where physical repair happens, so more of it means better overnight recovery.",
			Actions: []string{
				"Keep evening routines calm and consistent",
				"Maintain your current exercise timing",
				"Continue limiting alcohol, which suppresses deep sleep",
			},
		},
		models.DirectionDeclining: {
			Rationale: "Less deep sleep means less physical repair, even when total sleep time looks fine.",
			Actions: []string{
				"Cut alcohol close to bedtime",
				"Finish intense exercise at least three hours before bed",
				"Keep the bedroom cool and dark",
				"Wind down with something low-stimulation before lights out",
			},
		},
	},
	models.MetricRemSleep: {
		models.DirectionImproving: {
			Rationale: "More REM sleep supports memory, learning, and emotional recovery.",
			Actions: []string{
				"Keep your wake time steady so REM-heavy morning sleep is not cut short",
				"Stay consistent with your current schedule",
				"Keep your stress management practices going",
			},
		},
		models.DirectionDeclining: {
			Rationale: "REM sleep is getting squeezed, which tends to show up as mental fog and a shorter fuse.",
			Actions: []string{
				"Stop setting alarms earlier than you need",
				"Skip the nightcap, alcohol fragments REM",
				"Hold a fixed wake time for two weeks",
				"Add a short wind-down routine for evening stress",
			},
		},
	},
	models.MetricStress: {
		models.DirectionImproving: {
			Rationale: "Your average stress load is easing, giving your nervous system room to recover.",
			Actions: []string{
				"Keep the habits that lowered the load",
				"Protect breaks during your most demanding days",
				"Continue whatever recovery practice you added",
			},
		},
		models.DirectionDeclining: {
			Rationale: "Sustained high stress keeps your body in spend mode and quietly taxes sleep and recovery.",
			Actions: []string{
				"Schedule two short breathing breaks into each workday",
				"Take a 10-minute walk after your most stressful block",
				"Defend one evening this week with no obligations",
				"Cut caffeine after lunch",
			},
		},
	},
	models.MetricRestingHR: {
		models.DirectionImproving: {
			Rationale: "A falling resting heart rate usually signals improving cardiovascular fitness and solid recovery.",
			Actions: []string{
				"Keep your current aerobic training volume",
				"Maintain sleep consistency",
				"Recheck after your next hard training block",
			},
		},
		models.DirectionDeclining: {
			Rationale: "A rising resting heart rate often flags incomplete recovery, stress, or an oncoming illness.",
			Actions: []string{
				"Swap one hard session for an easy one this week",
				"Prioritize an early night tonight",
				"Hydrate and watch for other signs of illness",
				"Hold off on intensity until it settles",
			},
		},
	},
	models.MetricHRV: {
		models.DirectionImproving: {
			Rationale: "Rising heart rate variability means your recovery capacity is trending up.",
			Actions: []string{
				"The current balance of load and rest is working, keep it",
				"Maintain your sleep schedule",
				"Keep alcohol low, it suppresses HRV quickly",
			},
		},
		models.DirectionDeclining: {
			Rationale: "Falling HRV is one of the earliest signs of accumulated stress or under-recovery.",
			Actions: []string{
				"Reduce training intensity for a few days",
				"Add a daily 10-minute relaxation practice",
				"Cut evening alcohol entirely this week",
				"Get to bed 30 minutes earlier until it recovers",
			},
		},
	},
	models.MetricIntensityMinutes: {
		models.DirectionImproving: {
			Rationale: "More quality activity minutes build cardiovascular reserve over time.",
			Actions: []string{
				"Lock the sessions into your calendar so the streak holds",
				"Balance the added load with deliberate easy days",
				"Watch resting heart rate as load rises",
			},
		},
		models.DirectionDeclining: {
			Rationale: "Your vigorous activity is tapering off, and fitness follows load downward within weeks.",
			Actions: []string{
				"Book three 20-minute brisk sessions this week",
				"Attach activity to an existing habit, like lunch",
				"Pick one workout you genuinely enjoy and schedule it",
				"Start shorter than feels necessary, consistency first",
			},
		},
	},
	models.MetricSteps: {
		models.DirectionImproving: {
			Rationale: "A higher daily step count raises your low-intensity energy burn and supports recovery.",
			Actions: []string{
				"Keep the walking routine anchored to fixed times",
				"Take calls on foot where possible",
				"Hold the streak through weekends",
			},
		},
		models.DirectionDeclining: {
			Rationale: "Daily movement is sliding, and long sedentary stretches undercut even a good workout routine.",
			Actions: []string{
				"Add a 15-minute walk after lunch",
				"Get off transit one stop early or park further away",
				"Set an hourly stand-and-move reminder",
				"Take the stairs by default",
			},
		},
	},
}
