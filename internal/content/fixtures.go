package content

import "pkt.systems/termfolio/schema"

const defaultAbout = `Hi, I'm Akhil B (Boyina Akhil), a Computer Science student at Gayatri Vidya Parishad College of Engineering and a MERN stack developer who enjoys turning ideas into fast, reliable web applications.

Most of my time goes into two things: building full-stack products with React, Node.js, Express and MongoDB, and sharpening my problem solving through Data Structures and Algorithms. I have solved 300+ problems across LeetCode and Codeforces and mentor others on DSA and open source.

When I'm not coding I'm at hackathons, in GitHub Discussions, or looking for the next thing worth building.`

const defaultResume = `AKHIL B (Boyina Akhil)
Computer Science Student | MERN Stack Developer | DSA Enthusiast

EDUCATION
Gayatri Vidya Parishad College of Engineering
B.Tech in Computer Science Engineering (2024-2027)

SKILLS
Languages: JavaScript, C++, Python, Java
Frontend: React, Redux, Tailwind CSS, Bootstrap
Backend: Node.js, Express.js, REST APIs, JWT, Socket.IO
Database: MongoDB, Mongoose, Firebase

ACHIEVEMENTS
- Solved 300+ DSA problems on LeetCode & Codeforces
- Active mentor for DSA and Open Source
- Hackathon participant and community contributor

CONTACT
Email: akhilboyina2005@gmail.com
GitHub: github.com/Boyinaakhil
LinkedIn: linkedin.com/in/akhil-boyina`

const defaultLeetCode = `Opening LeetCode profile...
Profile: https://leetcode.com/u/Akhil_boyina

Stats: 300+ problems solved
Active participant in coding challenges
Focus areas: Data Structures, Algorithms, Dynamic Programming`

const defaultGFG = `Opening GeeksforGeeks profile...
Profile: https://geeksforgeeks.org/user/akhilboybvvi

Active contributor to the GFG community
Regular practice sessions and problem solving`

// DefaultProfile returns the built-in profile texts.
func DefaultProfile() schema.Profile {
	return schema.Profile{
		Name:     "Akhil B",
		Handle:   "akhilb",
		About:    defaultAbout,
		Whoami:   "Akhil B — MERN Stack Developer | DSA Enthusiast",
		Resume:   defaultResume,
		LeetCode: defaultLeetCode,
		GFG:      defaultGFG,
	}
}

// Default returns the built-in portfolio fixtures.
func Default() schema.Portfolio {
	return schema.Portfolio{
		Profile: DefaultProfile(),
		Projects: []schema.Project{
			{
				ID:           "1",
				Title:        "E-Commerce Website",
				Description:  "Full-stack MERN store with login, cart, checkout, filtering, and JWT authentication. Handles 100+ concurrent users with optimized MongoDB queries.",
				Technologies: []string{"React", "Node.js", "Express", "MongoDB", "JWT", "Stripe"},
				GithubURL:    "https://github.com/Boyinaakhil",
				LiveURL:      "https://example.com",
				Featured:     true,
			},
			{
				ID:           "2",
				Title:        "TrackIt Platform",
				Description:  "Task & productivity tracker using React, Node, MongoDB with real-time updates via Socket.IO for 20+ simultaneous users.",
				Technologies: []string{"React", "Node.js", "MongoDB", "Socket.IO", "Redux"},
				GithubURL:    "https://github.com/Boyinaakhil",
				Featured:     true,
			},
			{
				ID:           "3",
				Title:        "Grocery List & To-Do App",
				Description:  "Simple productivity app built with React + Firebase featuring full CRUD operations, real-time sync, and offline support.",
				Technologies: []string{"React", "Firebase", "Firestore", "React Hooks"},
				GithubURL:    "https://github.com/Boyinaakhil",
				LiveURL:      "https://example.com",
			},
			{
				ID:           "4",
				Title:        "Portfolio v1",
				Description:  "The current interactive dual-view website showcasing innovation and full-stack mastery with terminal and GUI modes.",
				Technologies: []string{"React", "TypeScript", "Tailwind CSS", "Framer Motion"},
				GithubURL:    "https://github.com/Boyinaakhil",
				LiveURL:      "https://example.com",
				Featured:     true,
			},
		},
		SkillCategories: []schema.SkillCategory{
			{Category: "Languages", Skills: []schema.Skill{
				{Name: "JavaScript", Proficiency: 90},
				{Name: "C++", Proficiency: 85},
				{Name: "Python", Proficiency: 75},
				{Name: "Java", Proficiency: 70},
			}},
			{Category: "Frontend", Skills: []schema.Skill{
				{Name: "React", Proficiency: 90},
				{Name: "Redux", Proficiency: 80},
				{Name: "Tailwind CSS", Proficiency: 85},
				{Name: "Bootstrap", Proficiency: 75},
			}},
			{Category: "Backend", Skills: []schema.Skill{
				{Name: "Node.js", Proficiency: 85},
				{Name: "Express.js", Proficiency: 85},
				{Name: "REST APIs", Proficiency: 90},
				{Name: "JWT", Proficiency: 80},
				{Name: "Socket.IO", Proficiency: 75},
			}},
			{Category: "Database & Hosting", Skills: []schema.Skill{
				{Name: "MongoDB", Proficiency: 85},
				{Name: "Mongoose", Proficiency: 80},
				{Name: "Firebase", Proficiency: 75},
				{Name: "Cloudinary", Proficiency: 70},
			}},
			{Category: "Tools", Skills: []schema.Skill{
				{Name: "Git", Proficiency: 85},
				{Name: "GitHub", Proficiency: 85},
				{Name: "VS Code", Proficiency: 90},
				{Name: "Vercel", Proficiency: 75},
			}},
			{Category: "Core Competencies", Skills: []schema.Skill{
				{Name: "Data Structures", Proficiency: 85},
				{Name: "Algorithms", Proficiency: 85},
				{Name: "Problem Solving", Proficiency: 90},
				{Name: "Web Optimization", Proficiency: 80},
			}},
		},
		Achievements: []schema.Achievement{
			{ID: "1", Title: "300+ DSA Problems Solved", Description: "Solved 300+ Data Structures and Algorithms problems across LeetCode and Codeforces platforms."},
			{ID: "2", Title: "Active Competitive Programmer", Description: "Regular participant on LeetCode and GeeksforGeeks with consistent problem-solving activity."},
			{ID: "3", Title: "DSA/Open Source Mentor", Description: "Mentor for Data Structures, Algorithms, and Open Source contributions on GitHub & LinkedIn."},
			{ID: "4", Title: "Hackathon Participant", Description: "Active participant in hackathons and coding contests, building innovative solutions under tight deadlines."},
			{ID: "5", Title: "Community Contributor", Description: "Active contributor in GitHub Discussions and various technical communities."},
		},
		SocialLinks: []schema.SocialLink{
			{Platform: "GitHub", URL: "https://github.com/Boyinaakhil", Username: "Boyinaakhil"},
			{Platform: "LinkedIn", URL: "https://linkedin.com/in/akhil-boyina", Username: "akhil-boyina"},
			{Platform: "LeetCode", URL: "https://leetcode.com/u/Akhil_boyina", Username: "Akhil_boyina"},
			{Platform: "GeeksforGeeks", URL: "https://geeksforgeeks.org/user/akhilboybvvi", Username: "akhilboybvvi"},
		},
		MotivationQuotes: []schema.MotivationQuote{
			{Quote: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
			{Quote: "Code is like humor. When you have to explain it, it's bad.", Author: "Cory House"},
			{Quote: "First, solve the problem. Then, write the code.", Author: "John Johnson"},
			{Quote: "Experience is the name everyone gives to their mistakes.", Author: "Oscar Wilde"},
			{Quote: "In order to be irreplaceable, one must always be different.", Author: "Coco Chanel"},
			{Quote: "Java is to JavaScript what car is to Carpet.", Author: "Chris Heilmann"},
			{Quote: "Knowledge is power.", Author: "Francis Bacon"},
			{Quote: "Sometimes it pays to stay in bed on Monday, rather than spending the rest of the week debugging Monday's code.", Author: "Dan Salomon"},
			{Quote: "Perfection is achieved not when there is nothing more to add, but rather when there is nothing more to take away.", Author: "Antoine de Saint-Exupery"},
			{Quote: "Code never lies, comments sometimes do.", Author: "Ron Jeffries"},
		},
		Stats: schema.Stats{
			ProblemsSolved: 300,
			EasyProblems:   120,
			MediumProblems: 140,
			HardProblems:   40,
			Languages:      []string{"JavaScript", "C++", "Python", "Java"},
			Skills: schema.SkillStats{
				ProblemSolving: 90,
				MERNStack:      85,
				DataStructures: 85,
				Algorithms:     85,
				WebDevelopment: 90,
			},
		},
	}
}
