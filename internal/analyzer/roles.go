package analyzer

import "strings"

// roleProfile couples the skill expectations and the interview question bank
// for one family of job roles. Roles are matched by substring against the
// normalized role string, first match wins, so more specific keys must come
// before generic ones.
type roleProfile struct {
	keywords  []string
	required  []string
	preferred []string
	questions []string
}

// softSkills apply to every role.
var softSkills = []string{
	"communication", "teamwork", "problem-solving", "leadership",
	"time management", "adaptability", "critical thinking", "collaboration",
}

var roleProfiles = []roleProfile{
	{
		keywords: []string{"backend", "java", "spring"},
		required: []string{"java", "spring boot", "rest api", "sql", "git",
			"microservices", "database", "maven", "junit"},
		preferred: []string{"kubernetes", "docker", "aws", "kafka", "redis",
			"mongodb", "hibernate", "ci/cd", "jenkins"},
		questions: []string{
			"How do you approach designing a RESTful API from scratch? What principles guide your decisions?",
			"Tell me about a time you had to optimize a slow database query. What was your process?",
			"How do you ensure thread safety in a multi-threaded application?",
			"Explain your approach to handling exceptions and error responses in a backend API.",
			"What's your strategy for breaking down a monolith into microservices?",
			"How do you implement authentication and authorization in your applications?",
			"Describe your experience with caching strategies. When would you use Redis vs in-memory cache?",
			"How do you approach writing testable code? What's your testing strategy?",
			"Explain a challenging concurrency problem you solved and your approach.",
		},
	},
	{
		keywords: []string{"frontend", "react", "angular"},
		required: []string{"javascript", "html", "css", "react", "typescript",
			"responsive design", "git", "npm"},
		preferred: []string{"redux", "webpack", "jest", "graphql", "tailwind",
			"next.js", "vue", "sass", "figma"},
		questions: []string{
			"How do you decide between local state, context, and global state management?",
			"When would you use useMemo vs useCallback? Give me a real example.",
			"How do you approach performance optimization in a React application?",
			"Explain your strategy for handling complex forms with validation.",
			"How do you structure your components to maximize reusability?",
			"What's your approach to responsive design and cross-browser compatibility?",
			"How do you handle API calls and loading/error states elegantly?",
			"Tell me about your experience with CSS-in-JS vs traditional CSS approaches.",
			"How do you ensure accessibility in your applications?",
		},
	},
	{
		keywords: []string{"fullstack", "full stack"},
		required: []string{"javascript", "html", "css", "node.js", "react",
			"sql", "rest api", "git"},
		preferred: []string{"typescript", "mongodb", "docker", "aws", "graphql",
			"redis", "ci/cd", "kubernetes"},
		questions: []string{
			"How do you decide what logic belongs in frontend vs backend?",
			"Explain your approach to API design between your frontend and backend.",
			"How do you handle authentication across your full-stack application?",
			"What's your strategy for managing environment-specific configurations?",
			"How do you approach database schema design for a new feature?",
			"Tell me about your experience with real-time features like WebSockets.",
			"How do you handle file uploads in a full-stack application?",
			"What's your approach to error handling across the entire stack?",
			"How do you ensure consistency between frontend and backend validations?",
		},
	},
	{
		keywords: []string{"data scientist", "data science"},
		required: []string{"python", "machine learning", "sql", "statistics",
			"pandas", "numpy", "data visualization", "jupyter"},
		preferred: []string{"tensorflow", "pytorch", "scikit-learn", "spark",
			"tableau", "deep learning", "nlp", "r"},
		questions: []string{
			"Walk me through your typical approach to a new data science project.",
			"How do you handle missing data and what factors influence your approach?",
			"Explain a time you had to communicate complex findings to non-technical stakeholders.",
			"How do you choose between different machine learning algorithms for a problem?",
			"What's your approach to feature engineering and selection?",
			"How do you prevent overfitting in your models?",
			"Tell me about a time your model didn't perform as expected in production.",
			"How do you validate your models before deployment?",
			"What tools and practices do you use to ensure reproducibility?",
		},
	},
	{
		keywords: []string{"machine learning", "ml engineer"},
		required: []string{"python", "tensorflow", "pytorch", "machine learning",
			"deep learning", "numpy", "pandas", "scikit-learn"},
		preferred: []string{"mlops", "kubernetes", "aws sagemaker", "computer vision",
			"nlp", "transformers", "hugging face", "onnx"},
		questions: []string{
			"How do you approach deploying ML models to production?",
			"Explain your MLOps practices and how you handle model versioning.",
			"What metrics do you use to monitor model performance in production?",
			"How do you handle model retraining and data drift?",
			"Tell me about your experience optimizing model inference latency.",
			"How do you approach feature store design and management?",
			"What's your strategy for A/B testing ML models?",
			"Explain a complex neural network architecture you designed.",
			"How do you handle large-scale distributed training?",
		},
	},
	{
		keywords: []string{"devops", "sre", "site reliability"},
		required: []string{"docker", "kubernetes", "ci/cd", "linux", "aws",
			"terraform", "jenkins", "git"},
		preferred: []string{"ansible", "prometheus", "grafana", "helm", "azure",
			"gcp", "python", "bash", "istio"},
		questions: []string{
			"How do you design a CI/CD pipeline for a microservices architecture?",
			"Tell me about your experience with infrastructure as code.",
			"How do you approach Kubernetes cluster management and security?",
			"What's your incident response process when something goes wrong in production?",
			"How do you implement effective monitoring and alerting?",
			"Explain your approach to capacity planning and scaling.",
			"How do you handle secrets management in your infrastructure?",
			"Tell me about a time you improved deployment reliability.",
			"What's your strategy for disaster recovery and business continuity?",
		},
	},
	{
		keywords: []string{"security", "cybersecurity"},
		required: []string{"security", "penetration testing", "vulnerability assessment",
			"siem", "firewalls", "encryption", "network security"},
		preferred: []string{"owasp", "soc", "incident response", "compliance", "cissp",
			"ethical hacking", "python", "splunk"},
		questions: []string{
			"How do you approach a security assessment of a new application?",
			"Walk me through your incident response methodology.",
			"How do you stay current with emerging security threats?",
			"Explain your approach to implementing zero-trust architecture.",
			"How do you balance security requirements with developer experience?",
			"Tell me about a security vulnerability you discovered and how you handled it.",
			"What's your strategy for security awareness training?",
			"How do you prioritize security findings for remediation?",
			"Explain your approach to secure code review.",
		},
	},
	{
		keywords: []string{"qa", "test", "quality"},
		required: []string{"test automation", "selenium", "junit", "api testing",
			"manual testing", "test cases", "bug tracking", "agile"},
		preferred: []string{"cypress", "postman", "jira", "performance testing",
			"cucumber", "jenkins", "python", "javascript"},
		questions: []string{
			"How do you decide what to automate vs test manually?",
			"Walk me through your test strategy for a new feature.",
			"How do you handle flaky tests in your automation suite?",
			"What's your approach to API testing?",
			"How do you design test data management strategies?",
			"Tell me about your experience with performance testing.",
			"How do you ensure test coverage without slowing down development?",
			"What metrics do you track to measure quality?",
			"How do you approach cross-browser and cross-device testing?",
		},
	},
	{
		keywords: []string{"mobile", "android", "ios"},
		required: []string{"mobile development", "android", "ios", "java", "kotlin",
			"swift", "rest api", "git"},
		preferred: []string{"react native", "flutter", "firebase", "mvvm",
			"unit testing", "ci/cd", "app store"},
		questions: []string{
			"How do you approach offline-first architecture in mobile apps?",
			"What's your strategy for handling different screen sizes and orientations?",
			"How do you optimize app performance and battery usage?",
			"Explain your approach to state management in mobile development.",
			"How do you handle app updates and version compatibility?",
			"What's your testing strategy for mobile applications?",
			"How do you implement push notifications effectively?",
			"Tell me about your experience with app store deployment process.",
			"How do you handle sensitive data storage on mobile devices?",
		},
	},
	{
		keywords: []string{"cloud", "aws", "azure"},
		required: []string{"aws", "cloud architecture", "ec2", "s3", "vpc",
			"iam", "lambda", "cloudformation"},
		preferred: []string{"azure", "gcp", "kubernetes", "terraform", "docker",
			"serverless", "dynamodb", "rds"},
		questions: []string{
			"How do you approach designing highly available systems?",
			"Explain your strategy for cost optimization in the cloud.",
			"How do you design for scalability from day one?",
			"What's your approach to multi-region architecture?",
			"How do you handle data consistency in distributed systems?",
			"Tell me about your experience with serverless architectures.",
			"How do you approach vendor lock-in concerns?",
			"What patterns do you use for inter-service communication?",
			"How do you design for observability in complex systems?",
		},
	},
	{
		keywords: []string{"product manager", "product owner"},
		required: []string{"product management", "agile", "scrum", "roadmap",
			"stakeholder management", "user stories", "jira"},
		preferred: []string{"data analysis", "a/b testing", "ux", "sql",
			"analytics", "okr", "customer research"},
		questions: []string{
			"How do you prioritize features when everything seems important?",
			"Walk me through your process for gathering user requirements.",
			"How do you measure the success of a product feature?",
			"Tell me about a time you had to say no to a stakeholder.",
			"How do you balance technical debt against new features?",
			"What's your approach to defining and tracking OKRs?",
			"How do you handle competing priorities from different teams?",
			"Describe your ideal product development workflow.",
			"How do you validate product ideas before building?",
		},
	},
	{
		keywords: []string{"ui", "ux", "designer"},
		required: []string{"ui design", "ux design", "figma", "wireframing",
			"prototyping", "user research", "design systems"},
		preferred: []string{"adobe xd", "sketch", "usability testing", "html",
			"css", "accessibility", "motion design"},
	},
	{
		keywords: []string{"data engineer"},
		required: []string{"python", "sql", "etl", "spark", "data pipelines",
			"airflow", "aws", "data warehousing"},
		preferred: []string{"kafka", "snowflake", "dbt", "redshift", "databricks",
			"hadoop", "scala", "kubernetes"},
	},
	{
		keywords: []string{"architect", "solution"},
		required: []string{"system design", "architecture", "microservices",
			"cloud", "api design", "scalability", "security"},
		preferred: []string{"aws", "azure", "kubernetes", "event-driven",
			"domain-driven design", "togaf", "caching"},
	},
	{
		keywords: []string{"blockchain"},
		required: []string{"blockchain", "solidity", "ethereum", "smart contracts",
			"web3", "cryptography", "javascript"},
		preferred: []string{"hyperledger", "defi", "nft", "rust", "truffle",
			"hardhat", "node.js"},
	},
}

// genericProfile is the fallback when no role keyword matches.
var genericProfile = roleProfile{
	required: []string{"programming", "software development", "git",
		"problem-solving", "sql", "api", "agile"},
	preferred: []string{"java", "python", "javascript", "aws", "docker",
		"testing", "ci/cd"},
}

var introQuestions = []string{
	"Tell me about yourself and what made you interested in this role.",
	"Walk me through your career journey so far - what are you most proud of?",
	"What excites you most about the technology landscape today?",
}

var behavioralQuestions = []string{
	"Tell me about a time you had to work under a tight deadline. How did you manage?",
	"Describe a situation where you disagreed with a team member. How did you resolve it?",
	"Give me an example of when you took initiative beyond your regular responsibilities.",
	"Tell me about a mistake you made and what you learned from it.",
	"How do you handle feedback, especially when it's critical?",
	"Describe a time when you had to learn a new technology quickly. What was your approach?",
	"Tell me about your most challenging project and how you overcame obstacles.",
	"How do you stay motivated when working on long-term projects?",
	"Describe a situation where you had to explain a technical concept to a non-technical person.",
}

var genericTechnicalQuestions = []string{
	"How do you approach debugging a complex issue?",
	"What's your process for learning a new technology or framework?",
	"How do you ensure code quality in your projects?",
	"Explain your approach to documentation.",
	"How do you handle technical debt in your codebase?",
	"What development methodologies have you worked with?",
	"How do you approach code reviews?",
	"Tell me about your experience with version control workflows.",
	"How do you keep your technical skills up to date?",
}

var fillerQuestions = []string{
	"Where do you see yourself in 5 years?",
	"What questions do you have for me about the role or team?",
	"What's your ideal work environment?",
	"How do you handle stress and pressure?",
	"What makes you stand out as a candidate?",
}

// profileForRole resolves the skill/question profile for a role string.
// Matching is by substring on the lowercased role, falling back to the
// generic software developer profile.
func profileForRole(role string) roleProfile {
	roleLower := strings.ToLower(role)
	for _, p := range roleProfiles {
		for _, kw := range p.keywords {
			if strings.Contains(roleLower, kw) {
				return p
			}
		}
	}
	return genericProfile
}
