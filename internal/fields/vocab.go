package fields

// Reference vocabularies scanned in CV text. The "languages" list mirrors the
// technology vocabulary of the recruitment domain: programming languages and
// data stores a candidate may list.
var LanguagesVocabulary = []string{
	"Python", "Java", "JavaScript", "HTML", "CSS", "SQL", "PHP", "C++", "C#", "Ruby", "Go",
	"Kotlin", "Swift", "TypeScript", "C", "XML", "NoSQL", "MongoDB", "MySQL", "PostgreSQL",
}

var FrameworksVocabulary = []string{
	"React", "Angular", "Vue", "Django", "Flask", "Spring", "Spring Boot", "Node.js",
	"Laravel", "Symfony", "CodeIgniter", "Express", "FastAPI", "Tornado", "Bottle",
	"Bootstrap", "Tailwind CSS", "jQuery", "Svelte",
	"Jakarta EE", "ASP.NET", ".NET", "Blazor", "Xamarin",
	"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas", "NumPy", "Matplotlib",
	"Hibernate", "JPA",
}

var TechnologiesVocabulary = []string{
	"Docker", "Kubernetes", "Git", "Jenkins", "GitLab", "GitHub", "Bitbucket",
	"AWS", "Azure", "Google Cloud Platform", "Firebase", "Heroku",
	"Redis", "Elasticsearch", "Apache", "Nginx", "Tomcat",
	"Cassandra", "Oracle", "SQLite", "MariaDB",
	"Grafana", "Prometheus", "Kibana", "Logstash",
	"Maven", "Gradle", "NPM", "Yarn", "Pip", "Composer",
}

var ConceptsVocabulary = []string{
	"Machine Learning", "Data Science", "Artificial Intelligence", "Deep Learning",
	"Project Management", "Agile", "Scrum", "Leadership", "Communication",
	"DevOps", "Microservices", "API", "REST", "GraphQL", "MVC", "MVVM",
}
