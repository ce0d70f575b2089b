package seedhandler

import (
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// jobTitles - ровно 25 названий, по одному на вакансию, без повторов
var jobTitles = []string{
	"Senior Software Engineer", "Product Manager", "UX Designer", "Data Scientist",
	"DevOps Engineer", "Frontend Developer", "Backend Developer", "Mobile Developer",
	"Technical Lead", "QA Engineer", "Business Analyst", "Marketing Manager",
	"Sales Representative", "HR Specialist", "Financial Analyst", "Operations Manager",
	"Customer Success Manager", "Content Writer", "Graphic Designer", "Project Manager",
	"Security Engineer", "Machine Learning Engineer", "Cloud Architect", "Scrum Master",
	"Full Stack Developer",
}

var departments = []string{"Engineering", "Product", "Design", "Data & Analytics", "Sales", "Marketing", "HR", "Operations"}

var locations = []string{"New York", "San Francisco", "Austin", "Seattle", "Remote", "Los Angeles", "Chicago", "Boston"}

var experiences = []string{"Entry", "Mid", "Senior", "Staff", "Principal"}

var employmentTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

var techTags = []string{"React", "TypeScript", "Node.js", "Python", "AWS", "Docker", "Kubernetes", "GraphQL", "MongoDB", "PostgreSQL"}

var skillTags = []string{"Leadership", "Communication", "Problem Solving", "Team Work", "Critical Thinking", "Creativity", "Adaptability"}

var firstNames = []string{
	"Alexandra", "Benjamin", "Catherine", "Daniel", "Elena", "Felix", "Gabriela", "Hassan",
	"Isabella", "James", "Kiran", "Lucas", "Maria", "Nathan", "Olivia", "Priya",
	"Quinn", "Raj", "Sophia", "Thomas", "Uma", "Viktor", "Wei", "Xander",
	"Yasmin", "Zoe", "Adrian", "Beatrice", "Carlos", "Diana", "Eric", "Fatima",
}

var lastNames = []string{
	"Anderson", "Brown", "Chen", "Davis", "Evans", "Foster", "Garcia", "Harris",
	"Johnson", "Kumar", "Lee", "Martinez", "Nguyen", "O'Connor", "Patel", "Rodriguez",
	"Smith", "Thompson", "Williams", "Zhang", "Miller", "Wilson", "Moore", "Taylor",
	"Jackson", "White", "Martin", "Clark", "Lewis", "Walker", "Hall", "Young",
}

var noteTexts = []string{
	"Great technical skills demonstrated during initial screening.",
	"Strong communication skills, would be a good culture fit.",
	"Impressive portfolio and GitHub contributions.",
	"Previous experience aligns well with our requirements.",
	"Highly motivated candidate with excellent problem-solving abilities.",
	"Good leadership potential based on previous roles.",
	"Strong analytical thinking and attention to detail.",
}

// шаблон вопроса из пула, ид выдаётся при генерации
type questionTemplate struct {
	text    string
	details dbmodels.QuestionDetails
}

var technicalQuestions = []questionTemplate{
	{
		text:    "Describe your experience with system design and scalability challenges. Provide a specific example of a system you designed or improved.",
		details: dbmodels.LongTextDetails{MaxLength: 2000},
	},
	{
		text:    "Which of the following are best practices for writing maintainable code? (Select all that apply)",
		details: dbmodels.MultiChoiceDetails{Options: []string{"Write descriptive variable names", "Use consistent indentation", "Add meaningful comments", "Keep functions small and focused", "Use global variables extensively"}},
	},
	{
		text:    "What is the time complexity of binary search in a sorted array?",
		details: dbmodels.SingleChoiceDetails{Options: []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"}},
	},
	{
		text:    "What is your favorite programming language and why?",
		details: dbmodels.ShortTextDetails{MaxLength: 500},
	},
	{
		text:    "Explain the difference between SQL and NoSQL databases. When would you choose one over the other?",
		details: dbmodels.LongTextDetails{MaxLength: 2000},
	},
	{
		text:    "Which of these are valid HTTP status codes? (Select all that apply)",
		details: dbmodels.MultiChoiceDetails{Options: []string{"200 OK", "404 Not Found", "500 Internal Server Error", "301 Moved Permanently", "999 Invalid Code"}},
	},
	{
		text:    "What does API stand for?",
		details: dbmodels.SingleChoiceDetails{Options: []string{"Application Programming Interface", "Advanced Programming Integration", "Automated Program Interaction", "Application Process Integration"}},
	},
	{
		text:    "Describe a challenging debugging experience you had. What was the problem and how did you solve it?",
		details: dbmodels.LongTextDetails{MaxLength: 2000},
	},
}

var behavioralQuestions = []questionTemplate{
	{
		text:    "Tell me about a time when you had to work with a difficult team member. How did you handle the situation?",
		details: dbmodels.LongTextDetails{MaxLength: 2000},
	},
	{
		text:    "Describe a project where you had to learn a new technology quickly. How did you approach it?",
		details: dbmodels.LongTextDetails{MaxLength: 2000},
	},
	{
		text:    "What motivates you most in your work?",
		details: dbmodels.ShortTextDetails{MaxLength: 500},
	},
	{
		text:    "Give an example of a time when you had to make a difficult decision with limited information.",
		details: dbmodels.LongTextDetails{MaxLength: 2000},
	},
	{
		text:    "How do you prefer to receive feedback?",
		details: dbmodels.SingleChoiceDetails{Options: []string{"In person during regular meetings", "Via written communication", "Immediately when issues arise", "During formal review periods"}},
	},
	{
		text:    "Describe a time when you had to meet a tight deadline. How did you prioritize your tasks?",
		details: dbmodels.LongTextDetails{MaxLength: 2000},
	},
}

var cultureQuestions = []questionTemplate{
	{
		text:    "What type of work environment do you thrive in?",
		details: dbmodels.ShortTextDetails{MaxLength: 500},
	},
	{
		text:    "Which of these values resonate most with you? (Select all that apply)",
		details: dbmodels.MultiChoiceDetails{Options: []string{"Innovation", "Collaboration", "Quality", "Speed", "Learning", "Customer Focus"}},
	},
	{
		text:    "How do you stay updated with industry trends and best practices?",
		details: dbmodels.LongTextDetails{MaxLength: 1500},
	},
	{
		text:    "What's most important to you in a company?",
		details: dbmodels.SingleChoiceDetails{Options: []string{"Growth opportunities", "Work-life balance", "Compensation", "Company mission", "Team culture"}},
	},
}

// kindSlug - короткий код типа опросника для ид вопросов
var kindSlug = map[models.AssessmentKind]string{
	models.AssessmentTechnical:  "tech",
	models.AssessmentBehavioral: "behav",
	models.AssessmentCulture:    "culture",
	models.AssessmentSkills:     "skills",
}
