package enrich

// skillTerms is the static skills dictionary. Matching is word-bounded and
// case-insensitive; the canonical casing here is what lands on the record.
var skillTerms = []string{
	"Go",
	"Golang",
	"Python",
	"Java",
	"JavaScript",
	"TypeScript",
	"Rust",
	"C++",
	"C#",
	"Ruby",
	"PHP",
	"Kotlin",
	"Swift",
	"Scala",
	"SQL",
	"PostgreSQL",
	"MySQL",
	"MongoDB",
	"Redis",
	"Elasticsearch",
	"Kafka",
	"RabbitMQ",
	"GraphQL",
	"gRPC",
	"REST",
	"React",
	"Angular",
	"Vue",
	"Node.js",
	"Django",
	"Rails",
	"Spring",
	"Docker",
	"Kubernetes",
	"Terraform",
	"Ansible",
	"AWS",
	"Azure",
	"GCP",
	"Linux",
	"Git",
	"CI/CD",
	"Machine Learning",
	"Data Engineering",
	"DevOps",
	"Microservices",
	"Agile",
	"Scrum",
}

// benefitTerms is the static benefits dictionary.
var benefitTerms = []string{
	"401k",
	"Pension",
	"Health Insurance",
	"Dental",
	"Vision",
	"Equity",
	"Stock Options",
	"Bonus",
	"Remote Work",
	"Flexible Hours",
	"Unlimited PTO",
	"Paid Time Off",
	"Parental Leave",
	"Relocation",
	"Gym Membership",
	"Learning Budget",
	"Conference Budget",
	"Sabbatical",
	"Visa Sponsorship",
	"Signing Bonus",
}
