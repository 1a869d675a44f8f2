package seed

import (
	"github.com/edulink/mentor-service/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedQuestionBank installs the assessment question bank. An existing bank
// of at least the shipped size is left alone; a smaller one is replaced
// wholesale so stale drafts never dilute an exam.
func SeedQuestionBank(db *gorm.DB) error {
	bank := questionBank()

	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count >= int64(len(bank)) {
		return nil
	}

	if count > 0 {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&model.Question{}).Error; err != nil {
			return err
		}
	}
	if err := db.CreateInBatches(bank, 50).Error; err != nil {
		return err
	}

	log.Info().Int("questions", len(bank)).Msg("Question bank seeded")
	return nil
}

func questionBank() []model.Question {
	return []model.Question{
		// General mentorship
		{Category: model.GeneralCategory, QuestionText: "What is the most important quality of an effective mentor?", OptionA: "Deep expertise in every topic", OptionB: "Active listening and empathy", OptionC: "A long job title", OptionD: "Strictness and high demands", CorrectAnswer: "B", Difficulty: "Easy", Explanation: "Listening reveals what the mentee actually needs.", IsActive: true},
		{Category: model.GeneralCategory, QuestionText: "A mentee disagrees with your advice. What should you do?", OptionA: "Insist you are right", OptionB: "End the relationship", OptionC: "Hear their perspective and discuss alternatives", OptionD: "Avoid the topic in future sessions", CorrectAnswer: "C", Difficulty: "Medium", IsActive: true},
		{Category: model.GeneralCategory, QuestionText: "What is the primary goal of mentorship?", OptionA: "Providing ready-made answers", OptionB: "Helping mentees build skills and find their own solutions", OptionC: "Completing tasks for the mentee", OptionD: "Expanding the mentor's network", CorrectAnswer: "B", Difficulty: "Easy", IsActive: true},
		{Category: model.GeneralCategory, QuestionText: "How should a mentor handle a question they cannot answer?", OptionA: "Improvise a plausible answer", OptionB: "Change the subject", OptionC: "Admit it and research or refer the mentee to someone who knows", OptionD: "Tell the mentee the question is irrelevant", CorrectAnswer: "C", Difficulty: "Easy", IsActive: true},

		// Software Engineering
		{Category: "Software Engineering", QuestionText: "Which statement best describes the single responsibility principle?", OptionA: "A function may have only one line", OptionB: "A module should have exactly one reason to change", OptionC: "Each developer owns one file", OptionD: "A class may expose only one public method", CorrectAnswer: "B", Difficulty: "Medium", IsActive: true},
		{Category: "Software Engineering", QuestionText: "What is the main benefit of code review?", OptionA: "Slower releases", OptionB: "Knowledge sharing and earlier defect detection", OptionC: "Replacing automated tests", OptionD: "Measuring individual productivity", CorrectAnswer: "B", Difficulty: "Easy", IsActive: true},
		{Category: "Software Engineering", QuestionText: "Which data structure gives amortized O(1) lookup by key?", OptionA: "Hash table", OptionB: "Sorted array", OptionC: "Linked list", OptionD: "Binary heap", CorrectAnswer: "A", Difficulty: "Easy", IsActive: true},
		{Category: "Software Engineering", QuestionText: "What does a race condition require to occur?", OptionA: "A single-threaded program", OptionB: "Immutable shared state", OptionC: "Concurrent access to shared state with at least one write", OptionD: "A slow network", CorrectAnswer: "C", Difficulty: "Medium", IsActive: true},

		// Web Development
		{Category: "Web Development", QuestionText: "Which HTTP status code indicates a resource was not found?", OptionA: "200", OptionB: "301", OptionC: "404", OptionD: "500", CorrectAnswer: "C", Difficulty: "Easy", IsActive: true},
		{Category: "Web Development", QuestionText: "What does CORS control?", OptionA: "Database replication", OptionB: "Cross-origin requests made by browsers", OptionC: "CSS specificity", OptionD: "Server-side caching", CorrectAnswer: "B", Difficulty: "Medium", IsActive: true},
		{Category: "Web Development", QuestionText: "Which header carries a bearer token in an HTTP request?", OptionA: "Content-Type", OptionB: "Authorization", OptionC: "Accept", OptionD: "Origin", CorrectAnswer: "B", Difficulty: "Easy", IsActive: true},

		// Data Science
		{Category: "Data Science", QuestionText: "What does the median of a dataset represent?", OptionA: "The most frequent value", OptionB: "The arithmetic mean", OptionC: "The middle value when sorted", OptionD: "The largest value", CorrectAnswer: "C", Difficulty: "Easy", IsActive: true},
		{Category: "Data Science", QuestionText: "Why split data into training and test sets?", OptionA: "To make training faster", OptionB: "To estimate performance on unseen data", OptionC: "To reduce storage costs", OptionD: "To remove outliers", CorrectAnswer: "B", Difficulty: "Medium", IsActive: true},
		{Category: "Data Science", QuestionText: "Which plot is best for spotting a relationship between two numeric variables?", OptionA: "Pie chart", OptionB: "Scatter plot", OptionC: "Bar chart of counts", OptionD: "Word cloud", CorrectAnswer: "B", Difficulty: "Easy", IsActive: true},

		// Machine Learning
		{Category: "Machine Learning", QuestionText: "What is overfitting?", OptionA: "A model that is too simple for the data", OptionB: "A model that memorizes training noise and generalizes poorly", OptionC: "A model trained on too much data", OptionD: "A model with too few parameters", CorrectAnswer: "B", Difficulty: "Medium", IsActive: true},
		{Category: "Machine Learning", QuestionText: "Which technique helps reduce overfitting?", OptionA: "Adding regularization", OptionB: "Removing the validation set", OptionC: "Training for more epochs", OptionD: "Increasing the learning rate", CorrectAnswer: "A", Difficulty: "Medium", IsActive: true},

		// DevOps
		{Category: "DevOps", QuestionText: "What is the goal of continuous integration?", OptionA: "Deploying straight to production without tests", OptionB: "Merging and verifying changes frequently", OptionC: "Writing infrastructure by hand", OptionD: "Avoiding version control", CorrectAnswer: "B", Difficulty: "Easy", IsActive: true},
		{Category: "DevOps", QuestionText: "What does a container image contain?", OptionA: "Only application source code", OptionB: "The application plus its runtime dependencies", OptionC: "A full hardware emulator", OptionD: "Only configuration files", CorrectAnswer: "B", Difficulty: "Medium", IsActive: true},

		// Cybersecurity
		{Category: "Cybersecurity", QuestionText: "Why are passwords stored as salted hashes?", OptionA: "To make them shorter", OptionB: "So a database leak does not reveal the cleartext", OptionC: "To speed up login", OptionD: "To allow password recovery by email", CorrectAnswer: "B", Difficulty: "Medium", IsActive: true},
		{Category: "Cybersecurity", QuestionText: "What does the principle of least privilege say?", OptionA: "Everyone gets admin access for convenience", OptionB: "Grant only the access needed for the task", OptionC: "Privileges should never be revoked", OptionD: "Passwords should be rotated daily", CorrectAnswer: "B", Difficulty: "Easy", IsActive: true},

		// Cloud Computing
		{Category: "Cloud Computing", QuestionText: "What characterizes horizontal scaling?", OptionA: "Buying a bigger machine", OptionB: "Adding more instances behind a load balancer", OptionC: "Reducing the number of services", OptionD: "Moving to a single data center", CorrectAnswer: "B", Difficulty: "Medium", IsActive: true},
		{Category: "Cloud Computing", QuestionText: "What is object storage best suited for?", OptionA: "Low-latency relational queries", OptionB: "Storing large unstructured blobs like media files", OptionC: "Inter-process locks", OptionD: "CPU-bound computation", CorrectAnswer: "B", Difficulty: "Easy", IsActive: true},

		// Mobile Development
		{Category: "Mobile Development", QuestionText: "Why should network calls run off the UI thread?", OptionA: "They are faster there", OptionB: "Blocking the UI thread freezes the interface", OptionC: "The OS forbids any network use otherwise", OptionD: "It reduces battery usage to zero", CorrectAnswer: "B", Difficulty: "Easy", IsActive: true},
		{Category: "Mobile Development", QuestionText: "What is the benefit of publishing through staged rollouts?", OptionA: "Users get features alphabetically", OptionB: "Regressions surface on a small user fraction first", OptionC: "The app store waives review", OptionD: "Binaries become smaller", CorrectAnswer: "B", Difficulty: "Medium", IsActive: true},
	}
}
