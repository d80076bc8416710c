package models

// topic filter values in the order they are offered
var topicOrder = []string{"dsa", "os", "dbms", "oops", "system_design", "behavioral"}

var topicLabels = map[string]string{
	"dsa":           "Data Structures & Algorithms",
	"os":            "Operating System",
	"dbms":          "Database Management System",
	"oops":          "Object Oriented Programming",
	"system_design": "System Design",
	"behavioral":    "HR / Behavioral",
}

// TopicLabel returns the display name for a topic key, or the key itself.
func TopicLabel(topic string) string {
	if label, ok := topicLabels[topic]; ok {
		return label
	}
	return topic
}

type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions lists the values the search form offers. The topic filter is
// sent to the search service by its label.
type FilterOptions struct {
	Roles           []FilterOption `json:"roles"`
	Experience      []FilterOption `json:"yoe"`
	AssessmentTypes []FilterOption `json:"types"`
	Topics          []FilterOption `json:"topics"`
	Years           []FilterOption `json:"years"`
	Difficulties    []FilterOption `json:"difficulties"`
}

func DefaultFilterOptions() FilterOptions {
	topics := make([]FilterOption, 0, len(topicOrder))
	for _, key := range topicOrder {
		topics = append(topics, FilterOption{Value: topicLabels[key], Label: topicLabels[key]})
	}
	return FilterOptions{
		Roles:           []FilterOption{{Value: "Software Engineer", Label: "Software Engineer"}},
		Experience:      []FilterOption{{Value: "College Graduate", Label: "College Graduate"}},
		AssessmentTypes: []FilterOption{{Value: AssessmentInterview, Label: AssessmentInterview}},
		Topics:          topics,
		Years:           []FilterOption{{Value: "2024", Label: "2024"}},
		Difficulties: []FilterOption{
			{Value: string(Easy), Label: string(Easy)},
			{Value: string(Medium), Label: string(Medium)},
			{Value: string(Hard), Label: string(Hard)},
		},
	}
}
