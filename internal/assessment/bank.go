package assessment

// Question is one multiple-choice item. Answer is never sent to clients.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  int      `json:"-"`
}

var banks = map[string][]Question{
	"javascript": {
		{ID: "js-1", Prompt: "What does `typeof null` evaluate to?", Options: []string{"\"null\"", "\"object\"", "\"undefined\"", "\"number\""}, Answer: 1},
		{ID: "js-2", Prompt: "Which keyword declares a block-scoped variable that cannot be reassigned?", Options: []string{"var", "let", "const", "static"}, Answer: 2},
		{ID: "js-3", Prompt: "What does `[1, 2, 3].map(x => x * 2)` return?", Options: []string{"[2, 4, 6]", "[1, 2, 3]", "12", "undefined"}, Answer: 0},
		{ID: "js-4", Prompt: "Which method returns a promise that settles when every input promise settles?", Options: []string{"Promise.race", "Promise.any", "Promise.allSettled", "Promise.resolve"}, Answer: 2},
		{ID: "js-5", Prompt: "What is the result of `0.1 + 0.2 === 0.3`?", Options: []string{"true", "false", "TypeError", "NaN"}, Answer: 1},
	},
	"go": {
		{ID: "go-1", Prompt: "What is the zero value of a map?", Options: []string{"an empty map", "nil", "0", "it does not compile"}, Answer: 1},
		{ID: "go-2", Prompt: "Which statement runs a function when the surrounding function returns?", Options: []string{"go", "defer", "select", "finally"}, Answer: 1},
		{ID: "go-3", Prompt: "What happens when sending on a closed channel?", Options: []string{"the value is dropped", "it blocks forever", "it panics", "it returns an error"}, Answer: 2},
		{ID: "go-4", Prompt: "Which function checks whether an error wraps a target error?", Options: []string{"errors.Is", "errors.New", "fmt.Errorf", "errors.Join"}, Answer: 0},
		{ID: "go-5", Prompt: "How does a type satisfy an interface?", Options: []string{"with an implements clause", "by embedding the interface", "by having all its methods", "through registration"}, Answer: 2},
	},
	"sql": {
		{ID: "sql-1", Prompt: "Which clause filters rows after aggregation?", Options: []string{"WHERE", "HAVING", "GROUP BY", "ORDER BY"}, Answer: 1},
		{ID: "sql-2", Prompt: "Which join returns all rows from the left table?", Options: []string{"INNER JOIN", "CROSS JOIN", "LEFT JOIN", "RIGHT JOIN"}, Answer: 2},
		{ID: "sql-3", Prompt: "What does `COUNT(column)` skip?", Options: []string{"duplicates", "NULL values", "zeros", "nothing"}, Answer: 1},
		{ID: "sql-4", Prompt: "Which isolation level prevents phantom reads in the SQL standard?", Options: []string{"READ UNCOMMITTED", "READ COMMITTED", "REPEATABLE READ", "SERIALIZABLE"}, Answer: 3},
		{ID: "sql-5", Prompt: "Which statement removes all rows but keeps the table?", Options: []string{"DROP TABLE", "TRUNCATE", "ALTER TABLE", "DELETE DATABASE"}, Answer: 1},
	},
	"communication": {
		{ID: "com-1", Prompt: "A stakeholder disagrees with your proposal in a meeting. What is the best first step?", Options: []string{"Defend the proposal point by point", "Ask questions to understand their concern", "Escalate to your manager", "Drop the proposal"}, Answer: 1},
		{ID: "com-2", Prompt: "What belongs at the top of a status email to executives?", Options: []string{"Detailed background", "The key outcome or decision needed", "A list of attendees", "Next week's agenda"}, Answer: 1},
		{ID: "com-3", Prompt: "Which practice best confirms shared understanding after a discussion?", Options: []string{"Assume everyone agrees", "Send a written summary of decisions and owners", "Schedule another meeting", "Record the call only"}, Answer: 1},
		{ID: "com-4", Prompt: "How should critical feedback be delivered?", Options: []string{"Publicly and quickly", "Privately, specific and about behavior", "In the annual review only", "Through a colleague"}, Answer: 1},
		{ID: "com-5", Prompt: "What is active listening?", Options: []string{"Preparing your reply while others talk", "Paraphrasing and asking clarifying questions", "Taking verbatim notes", "Staying silent"}, Answer: 1},
	},
	"project-management": {
		{ID: "pm-1", Prompt: "What is the critical path?", Options: []string{"The riskiest task", "The longest chain of dependent tasks", "The budget approval process", "The list of stakeholders"}, Answer: 1},
		{ID: "pm-2", Prompt: "In Scrum, who owns the product backlog?", Options: []string{"Scrum Master", "Development team", "Product Owner", "Stakeholders"}, Answer: 2},
		{ID: "pm-3", Prompt: "What does scope creep describe?", Options: []string{"Uncontrolled growth of requirements", "A shrinking budget", "Team turnover", "Schedule compression"}, Answer: 0},
		{ID: "pm-4", Prompt: "Which artifact maps who is responsible, accountable, consulted and informed?", Options: []string{"Gantt chart", "RACI matrix", "Burndown chart", "Risk register"}, Answer: 1},
		{ID: "pm-5", Prompt: "A key task slips by a week. What should happen first?", Options: []string{"Hide it until it is fixed", "Assess the impact and inform stakeholders", "Add more people immediately", "Cancel the project"}, Answer: 1},
	},
}
