package config

const (
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
	defaultMaxIssues    = 20
	defaultDiffLimit    = 50
	defaultDiffWorkers  = 1
	maxDiffWorkers      = 64
	defaultAnalyzeLimit = 30
	defaultPreviewWidth = 60
	defaultReportTitle  = "Subtitle correction report"
	PatternKindLiteral  = "literal"
	PatternKindRegex    = "regex"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Validation: Validate{
			MaxIssues: defaultMaxIssues,
		},
		Diff: Diff{
			Limit:   defaultDiffLimit,
			Workers: defaultDiffWorkers,
		},
		Analyze: Analyze{
			Limit:        defaultAnalyzeLimit,
			PreviewWidth: defaultPreviewWidth,
		},
		Report: Report{
			Title: defaultReportTitle,
		},
	}
}
