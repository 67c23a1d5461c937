package reference

func defaultStatRenames() map[string]string {
	return map[string]string{
		// shared
		"gamesPlayed":          "G",
		"gamesStarted":         "GS",
		"atBats":               "AB",
		"runs":                 "R",
		"hits":                 "H",
		"doubles":              "2B",
		"triples":              "3B",
		"homeRuns":             "HR",
		"rbi":                  "RBI",
		"baseOnBalls":          "BB",
		"intentionalWalks":     "IBB",
		"strikeOuts":           "SO",
		"hitByPitch":           "HBP",
		"stolenBases":          "SB",
		"caughtStealing":       "CS",
		"stolenBasePercentage": "SB%",
		"groundIntoDoublePlay": "GIDP",
		"groundOuts":           "GO",
		"airOuts":              "AO",
		"groundOutsToAirouts":  "GO/AO",
		"numberOfPitches":      "NP",
		"sacBunts":             "SH",
		"sacFlies":             "SF",
		"totalBases":           "TB",
		"leftOnBase":           "LOB",
		"plateAppearances":     "PA",
		"catchersInterference": "CI",
		"avg":                  "AVG",
		"obp":                  "OBP",
		"slg":                  "SLG",
		"ops":                  "OPS",
		"babip":                "BABIP",
		"atBatsPerHomeRun":     "AB/HR",

		// hitting advanced
		"extraBaseHits":                "XBH",
		"iso":                          "ISO",
		"reachedOnError":               "ROE",
		"walkOffs":                     "WO",
		"pitchesPerPlateAppearance":    "P/PA",
		"walksPerPlateAppearance":      "BB/PA",
		"strikeoutsPerPlateAppearance": "K/PA",
		"homeRunsPerPlateAppearance":   "HR/PA",
		"walksPerStrikeout":            "BB/K",
		"flyOuts":                      "FO",
		"lineOuts":                     "LO",
		"popOuts":                      "PU",
		"gidpOpp":                      "GIDPO",

		// pitching
		"era":                    "ERA",
		"whip":                   "WHIP",
		"wins":                   "W",
		"losses":                 "L",
		"winPercentage":          "WIN%",
		"saves":                  "SV",
		"saveOpportunities":      "SVO",
		"holds":                  "HLD",
		"blownSaves":             "BS",
		"gamesPitched":           "GP",
		"gamesFinished":          "GF",
		"completeGames":          "CG",
		"shutouts":               "SHO",
		"inningsPitched":         "IP",
		"earnedRuns":             "ER",
		"battersFaced":           "BF",
		"outs":                   "OUTS",
		"wildPitches":            "WP",
		"balks":                  "BK",
		"pickoffs":               "PK",
		"strikes":                "STRIKES",
		"strikePercentage":       "STRIKE%",
		"pitchesPerInning":       "P/IP",
		"strikeoutWalkRatio":     "K/BB",
		"strikeoutsPer9Inn":      "K/9",
		"walksPer9Inn":           "BB/9",
		"hitsPer9Inn":            "H/9",
		"runsScoredPer9":         "R/9",
		"homeRunsPer9":           "HR/9",
		"qualityStarts":          "QS",
		"inheritedRunners":       "IR",
		"inheritedRunnersScored": "IRS",

		// fielding
		"position":             "POS",
		"assists":              "A",
		"putOuts":              "PO",
		"errors":               "E",
		"chances":              "TC",
		"fielding":             "FPCT",
		"doublePlays":          "DP",
		"triplePlays":          "TP",
		"throwingErrors":       "TE",
		"innings":              "INN",
		"rangeFactorPerGame":   "RF/G",
		"rangeFactorPer9Inn":   "RF/9",
		"passedBall":           "PB",
		"stolenBasesAllowed":   "SBA",
		"caughtStealingRate":   "CS%",
	}
}
