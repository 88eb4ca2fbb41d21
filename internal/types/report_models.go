package types

// TopicStat counts tag occurrences: a question contributing k tags adds k
// occurrences. Percentage is against the total occurrence count.
type TopicStat struct {
	Tag        string  `json:"tag"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RoleStat percentage is against the total question count, role-less
// questions included in the denominator.
type RoleStat struct {
	Role       string  `json:"role"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type FrequencyAnalysis struct {
	TotalWithFrequency int        `json:"totalWithFrequency"`
	AverageFrequency   float64    `json:"averageFrequency"`
	HotQuestions       []Question `json:"hotQuestions"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

type Analysis struct {
	Summary            string            `json:"summary"`
	TopTopics          []TopicStat       `json:"topTopics"`
	RoleDistribution   []RoleStat        `json:"roleDistribution"`
	FrequencyAnalysis  FrequencyAnalysis `json:"frequencyAnalysis"`
	TimeAnalysis       []YearCount       `json:"timeAnalysis"`
	SourceDistribution map[string]int    `json:"sourceDistribution"`
}

// Report is an ephemeral snapshot, recomputed on every query.
type Report struct {
	Company        string     `json:"company"`
	Role           *string    `json:"role"`
	TotalQuestions int        `json:"totalQuestions"`
	Questions      []Question `json:"questions"`
	Analysis       Analysis   `json:"analysis"`
}

// GlobalInsights is the cross-company dashboard view over the merged
// question feed, after browse filters are applied.
type GlobalInsights struct {
	TotalQuestions int          `json:"totalQuestions"`
	TotalCompanies int          `json:"totalCompanies"`
	TotalRoles     int          `json:"totalRoles"`
	AvgFrequency   float64      `json:"avgFrequency"`
	TopTopics      []TopicStat  `json:"topTopics"`
	MonthlyTrend   []MonthCount `json:"monthlyTrend"`
	Questions      []Question   `json:"questions"`
	Page           int          `json:"page"`
	TotalPages     int          `json:"totalPages"`
}

type CompanyCount struct {
	Name               string `json:"name"`
	InterviewQuestions int    `json:"interviewQuestions"`
	LeetcodeQuestions  int    `json:"leetcodeQuestions"`
	TotalQuestions     int    `json:"totalQuestions"`
}
