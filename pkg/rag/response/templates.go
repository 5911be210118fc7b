package response

// Hand-authored long-form answers. These are scripted talking points kept in
// the subject's own voice; edits here change what the twin literally says in
// interviews, so treat the wording as content, not code.

const challengingProjectTemplate = `My Food RAG Explorer project presented a significant technical challenge that pushed my abilities.

**Situation:** I built an AI application locally using Ollama and ChromaDB, but needed to migrate it to production for real-world use - something I'd never done before.

**Task:** Transition from local development to cloud deployment while maintaining functionality and learning production-grade AI architecture along the way.

**Action:** I systematically researched and implemented cloud alternatives: migrated from Ollama to Grok API, ChromaDB to Upstash vector database, designed the interface with V0.dev, and deployed on Vercel. I broke down each component and tackled them individually.

**Result:** Successfully deployed a live AI application and gained deep understanding of RAG systems, vector embeddings, and production deployment pipelines. This experience taught me that complex challenges become manageable through systematic breakdown and persistent problem-solving.`

const learningTemplate = `Great question! This actually happened during my Full Stack Developer internship with ausbiz Consulting, which was a 10-week intensive program.

**Situation:** I had some basic coding knowledge from university, but I hadn't worked with modern production frameworks like React 19, Next.js 15, or cloud deployment before. The program was fast-paced, and we were expected to build and deploy real applications within those 10 weeks.

**Task:** I needed to quickly master these technologies to successfully complete the program and build production-ready applications.

**Action:** I adopted a very hands-on learning approach. I'd watch the training materials, but then immediately apply what I learned by building small features. I also made heavy use of GitHub Copilot and ChatGPT - not just to write code, but to understand *why* the code worked that way. When I got stuck, I'd ask specific questions rather than broad ones. For example, when learning about server-side rendering in Next.js, I didn't just read about it - I built a small feature that required SSR, broke it, and fixed it. That's how the concepts really stuck.

**Result:** By the end of those 10 weeks, I had built multiple full-stack applications with React 19 and Next.js 15, integrated PostgreSQL databases with Prisma ORM, worked with AWS cloud services, and deployed production-ready applications to Vercel. I also earned my Full Stack Developer certification. This experience taught me that I thrive in intensive learning environments, and that I'm capable of picking up new technologies quickly when I combine structured learning with hands-on practice.`

const timeManagementTemplate = `This is something I actually deal with every day! Right now, I'm managing my AI Builder internship, working as a Student Tutor and Mentor at Victoria University, working part-time as a Front Office Receptionist at Royal Albert Hotel, and completing my final year of studies.

**Situation:** I needed to balance four significant commitments while maintaining quality in all areas and meeting everyone's expectations.

**Task:** The challenge was finding a way to manage these responsibilities without burning out or compromising on quality in any area.

**Action:** The key is that these roles actually fit together quite naturally. My mentoring role is most demanding during new student intakes - orientation periods at the start of semester. Those periods usually coincide with my university vacation breaks, when I'm authorized to work full-time on my student visa. My receptionist job is part-time evening shifts, which works perfectly because it doesn't conflict with my day-time university schedule or tutoring sessions. My internship is remote, so I don't lose time commuting. I use strategic scheduling, clear communication with all supervisors, and prioritization based on deadlines and impact.

**Result:** I've successfully maintained all commitments while achieving a 6.17/7.0 GPA, supporting 100+ students, and completing intensive internship programs. What I've learned is that it's not just about being busy - it's about being intentional with your time. Each role actually complements the others - tutoring improves my technical communication, hospitality strengthens customer service skills, and internships provide real-world experience to share with students.`

const mentoringTemplate = `I have a story that really shows how I approach this. I had a student who was struggling with our university's LMS system. She kept saying she was 'bad with technology' and getting frustrated every time she tried to navigate it.

**Situation:** A student was struggling with the university's Learning Management System and was getting increasingly frustrated, convinced she was 'bad with technology.'

**Task:** I needed to help her understand the system in a way that would build her confidence and create lasting understanding, not just solve the immediate problem.

**Action:** Instead of just walking her through the steps again, I sat down and asked her about how she organizes things at home. She told me she's really good at organizing her house - everything has a place, and her kids always come to her when they can't find something. So I reframed the LMS as being like organizing a house. I said 'Think of each subject as a different room. Just like you have a kitchen for cooking and a bedroom for sleeping, each subject has its own space with everything you need for that class.' I showed her how the discussion forums were like the living room where everyone gathers to talk, and the assignment submissions were like a filing cabinet.

**Result:** Suddenly, it all clicked for her. She wasn't bad with technology - she just needed a framework that made sense to her world. Now she's one of the most active students on the platform and even helps other students navigate it. That experience taught me that when someone doesn't understand a concept, it's usually not because they're incapable. It's because I haven't found the right way to connect it to something they already know.`

const introductionTemplate = `I'm Jashandeep, a final-year IT student at Victoria University Brisbane with hands-on experience in full-stack development and AI systems.

I've completed two internships with ausbiz Consulting - first as a Full Stack Developer building React and Next.js applications, and currently as an AI Builder developing digital twins and RAG systems. My standout project is the Food RAG Explorer, which I successfully migrated from local development to production using Grok API and Upstash.

I also tutor and mentor over 100 students at university, which has sharpened my ability to communicate complex technical concepts clearly. I'm passionate about creating solutions that make a real impact, and I'm looking forward to contributing that same energy to your team.`

const ragExplanationTemplate = `RAG - Retrieval-Augmented Generation - combines AI models with custom data retrieval for more accurate, context-aware responses.

I implemented this in my Food RAG Explorer project with 105 food items. The system converts both the data and user queries into vector embeddings, performs similarity searches to find relevant information, then feeds that context to the AI model. This grounds responses in actual data rather than just general AI knowledge.

I successfully migrated this from a local ChromaDB setup to production using Upstash vector database and Grok API, which taught me valuable lessons about scaling AI applications for real-world use.`

const fullstackExplanationTemplate = `I've gained solid full-stack experience through my internship at ausbiz Consulting, working with modern JavaScript technologies.

Frontend: React 19 and Next.js 15 with Tailwind CSS. I particularly value Next.js for its flexibility between server-side and client-side rendering, and TypeScript for maintaining code quality across the entire application.

Backend: I build APIs using Next.js App Router and Node.js, with PostgreSQL and Prisma ORM for database management. I've implemented authentication, RESTful APIs, and worked with vector databases like Upstash for AI features.

Deployment: All my applications are deployed on Vercel with proper environment variable management and production optimization. The tight integration between TypeScript, Prisma, and Next.js creates a really efficient development workflow.`

const deploymentExplanationTemplate = `I have strong experience deploying applications to Vercel, with a focus on smooth CI/CD workflows and security best practices.

My approach involves connecting GitHub repositories to Vercel for automatic deployments on each push, with proper environment variable configuration for sensitive data like API keys and database connections. For my Food RAG Explorer project, this included integrating Upstash vector database and Grok API.

Key practices I follow: secure environment variable management, thorough testing before deployment, monitoring deployment logs, and implementing preview deployments for testing changes. Vercel's Git integration streamlines the entire process, allowing me to focus on development rather than infrastructure management.`

const aiMlExplanationTemplate = `I've had some really exciting hands-on experience with AI/ML integration, particularly through my internships with ausbiz Consulting.

During my AI Builder internship, I'm working on enterprise-grade digital twin implementations. This involves creating AI systems that can represent real-world entities and processes using advanced AI architectures, vector embeddings, and RAG systems.

For my Food RAG Explorer project, I integrated multiple AI components:
- Started with Ollama running locally for development, which gave me understanding of how LLMs work
- Migrated to Grok API for production deployment
- Implemented vector embeddings to convert food information into numerical representations
- Set up a vector database (moved from ChromaDB to Upstash) to store and retrieve embeddings efficiently
- Created the RAG pipeline that retrieves relevant information and augments the AI's responses

What I've learned is that AI integration is about more than just calling an API. It's about:
1. Understanding the problem: What's the best AI approach for this specific use case?
2. Data preparation: Making sure your data is in the right format
3. Prompt engineering: Crafting effective prompts to get quality responses
4. Error handling: AI responses can be unpredictable, so you need good fallbacks
5. User experience: How do you present AI outputs in a way that's helpful and trustworthy?

I'm really excited about this field because it's moving so fast. I stay current by using tools like GitHub Copilot and Claude Desktop in my development workflow, which has also taught me a lot about working effectively with AI assistants.`

const salaryLocationTemplate = `I'm flexible on compensation and really interested in finding the right fit. Based on my research of Brisbane market rates and considering my technical skills in AI/ML and full-stack development, I'm thinking in the range of $65,000 to $75,000 for an entry-level developer role, with potential for a premium for specialized AI/ML positions up to $85,000.

What's most important to me is the opportunity to learn, contribute meaningfully, and grow with a great team. I'm also very interested in the role scope, mentorship opportunities, and growth potential - those factors are just as important as the base salary.

In terms of location, I'm based in Brisbane and would prefer to stay in Queensland - Brisbane, Gold Coast, or other Queensland locations work well for me. I'm also very open to remote or hybrid arrangements, and I have 20+ weeks of remote work experience from my internships with ausbiz Consulting, so I'm comfortable with remote collaboration.

I'm graduating in June 2026, so I'm looking for positions that could potentially start part-time during my final semester and transition to full-time after graduation. Is there flexibility in the role structure to accommodate that timeline?`

const availabilityTemplate = `I'm graduating in June 2026, so my availability has two phases:

**Current availability:** I'm authorized to work part-time during the semester - up to 20 hours per week - and full-time during university breaks. Right now I'm managing my AI Builder internship, mentoring responsibilities, and studies quite well, so I could potentially take on the right opportunity with proper scheduling.

**Post-graduation:** From July 2026 onwards, I'll be available for full-time work and eligible for a post-study work visa, which gives me full work authorization in Australia.

The ideal scenario would be a role that could start part-time - maybe 15-20 hours per week - during my final semester, then transition to full-time once I graduate. This would actually be perfect timing for a graduate program intake.

I have a good track record of balancing multiple commitments - I'm currently managing internship work, mentoring 100+ students, part-time hospitality work, and maintaining a 6.17 GPA. So I'm confident I can contribute meaningfully even on a part-time basis initially.

Is there flexibility in the role structure to accommodate this kind of timeline? I'd love to discuss how we could make it work.`

const companyInterestTemplate = `I'd need to research your specific company to give you a detailed answer, but I can share what generally excites me about potential opportunities.

I'm particularly drawn to companies that are doing innovative work with AI/ML technologies, especially those applying it to solve real business problems. Having built production AI systems like my Food RAG Explorer and digital twin implementations, I'm excited by organizations that are pushing the boundaries of what's possible with AI.

I also value companies with strong engineering cultures - places where I can learn from experienced developers, contribute ideas even as a junior team member, and grow technically. My mentoring experience has shown me how much I learn when I'm around people who challenge me to think differently.

From a practical standpoint, I'm looking for remote-friendly or Brisbane-based opportunities, and I'm particularly interested in companies that offer structured onboarding for new graduates - since I'm graduating in June 2026.

Could you tell me more about what makes your company special? What are the engineering team's biggest challenges right now? And what does the learning and development culture look like? I'd love to understand what makes this opportunity unique and how I could contribute to your team's success.`
