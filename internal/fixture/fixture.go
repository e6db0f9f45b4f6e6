// Package fixture 内置的课堂目录种子数据。
// memory 目录直接引用这份数据，mysql 目录在空库时用它灌入默认行。
package fixture

import (
	"encoding/json"

	"classboard_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
)

type Dataset struct {
	Users         []model.User
	Classes       []model.Class
	Assignments   []model.Assignment
	Quizzes       []model.Quiz
	Discussions   []model.Discussion
	Resources     []model.Resource
	Announcements []model.Announcement
	Students      []model.Student
	Submissions   []model.Submission
	Attendance    []model.Attendance
	Progress      []model.Progress
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hashed)
}

// Load 构造一份完整的种子目录；登录口令在这里做哈希
func Load() *Dataset {
	return &Dataset{
		Users: []model.User{
			{
				ID:        1,
				FirstName: "System",
				LastName:  "Admin",
				Email:     "admin@admin.com",
				Password:  mustHash("admin123"),
				Role:      model.RoleRecord{RoleName: "admin"},
			},
			{
				ID:        2,
				FirstName: "Sarah",
				LastName:  "Johnson",
				Email:     "sarah.johnson@school.edu",
				Password:  mustHash("teacher123"),
				Role:      model.RoleRecord{RoleName: "teacher"},
				Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			},
			{
				ID:        3,
				FirstName: "John",
				LastName:  "Doe",
				Email:     "john.doe@school.edu",
				Password:  mustHash("student123"),
				Role:      model.RoleRecord{RoleName: "student"},
				Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=John",
			},
		},
		Classes: []model.Class{
			{ID: "1", Name: "Mathematics", Section: "Section A", Subject: "Advanced Calculus", Room: "Room 101", Teacher: "Dr. Sarah Johnson", Color: "bg-blue-600", ImageURL: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800&q=80"},
			{ID: "2", Name: "Computer Science", Section: "Section B", Subject: "Data Structures", Room: "Room 203", Teacher: "Prof. Michael Chen", Color: "bg-green-600", ImageURL: "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800&q=80"},
			{ID: "3", Name: "Physics", Section: "Section C", Subject: "Quantum Mechanics", Room: "Lab 105", Teacher: "Dr. Emily Watson", Color: "bg-purple-600", ImageURL: "https://images.unsplash.com/photo-1636466497217-26a8cbeaf0aa?w=800&q=80"},
			{ID: "4", Name: "English Literature", Section: "Section A", Subject: "Modern Poetry", Room: "Room 301", Teacher: "Prof. David Miller", Color: "bg-red-600", ImageURL: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=800&q=80"},
			{ID: "5", Name: "Chemistry", Section: "Section D", Subject: "Organic Chemistry", Room: "Lab 202", Teacher: "Dr. Lisa Anderson", Color: "bg-orange-600", ImageURL: "https://images.unsplash.com/photo-1603126857599-f6e157fa2fe6?w=800&q=80"},
			{ID: "6", Name: "History", Section: "Section B", Subject: "World History", Room: "Room 405", Teacher: "Prof. Robert Taylor", Color: "bg-teal-600", ImageURL: "https://images.unsplash.com/photo-1461360370896-922624d12aa1?w=800&q=80"},
		},
		Assignments: []model.Assignment{
			{ID: "1", ClassID: "1", Title: "Calculus Problem Set 5", Description: "Complete problems 1-20 from Chapter 5. Show all your work and explain your reasoning for each problem.", DueDate: "2025-12-10T23:59:00", Points: 100, Type: model.AssignmentWork, Submitted: boolPtr(false)},
			{ID: "2", ClassID: "1", Title: "Integration Techniques Quiz", Description: "Online quiz covering integration by parts, substitution, and partial fractions.", DueDate: "2025-12-08T23:59:00", Points: 50, Type: model.AssignmentQuiz, Submitted: boolPtr(true), Grade: intPtr(45)},
			{ID: "3", ClassID: "2", Title: "Binary Search Tree Implementation", Description: "Implement a binary search tree with insert, delete, and search operations. Include unit tests.", DueDate: "2025-12-15T23:59:00", Points: 100, Type: model.AssignmentWork, Submitted: boolPtr(false)},
			{ID: "4", ClassID: "2", Title: "Algorithm Complexity Reading", Description: "Read Chapter 3 on Big O notation and time complexity analysis.", DueDate: "2025-12-05T23:59:00", Points: 0, Type: model.AssignmentMaterial, Submitted: boolPtr(true)},
			{ID: "5", ClassID: "3", Title: "Quantum States Lab Report", Description: "Write a detailed lab report on the quantum states experiment conducted last week.", DueDate: "2025-12-12T23:59:00", Points: 100, Type: model.AssignmentWork, Submitted: boolPtr(false)},
		},
		Quizzes: []model.Quiz{
			{
				ID: "1", ClassID: "1", Title: "Calculus Fundamentals",
				Description: "Test your understanding of limits, derivatives, and integration",
				DueDate:     "2025-12-15T23:59:00", Duration: 45, Points: 100, Attempts: 2,
				Questions: []model.QuizQuestion{
					{QuizID: "1", ID: "q1", Question: "What is the derivative of x²?", Type: model.QuestionMultipleChoice, Options: []string{"x", "2x", "x³", "2x²"}, CorrectAnswer: json.RawMessage("1"), Points: 10},
					{QuizID: "1", ID: "q2", Question: "The integral of 1/x is ln(x)", Type: model.QuestionTrueFalse, Options: []string{"True", "False"}, CorrectAnswer: json.RawMessage("0"), Points: 10},
				},
			},
			{
				ID: "2", ClassID: "2", Title: "Data Structures Basics",
				Description: "Quiz on arrays, linked lists, and trees",
				DueDate:     "2025-12-20T23:59:00", Duration: 60, Points: 100, Attempts: 1,
				Questions: []model.QuizQuestion{
					{QuizID: "2", ID: "q1", Question: "What is the time complexity of binary search?", Type: model.QuestionMultipleChoice, Options: []string{"O(n)", "O(log n)", "O(n²)", "O(1)"}, CorrectAnswer: json.RawMessage("1"), Points: 20},
				},
			},
		},
		Discussions: []model.Discussion{
			{
				ID: "1", ClassID: "1", Title: "Question about Problem Set 5",
				Content:    "I'm having trouble understanding problem 15. Can someone explain the chain rule application?",
				Author:     "John Doe", AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=John",
				AuthorRole: "student", Timestamp: "2025-12-02T14:30:00",
				Replies: []model.DiscussionReply{
					{DiscussionID: "1", ID: "r1", Author: "Dr. Sarah Johnson", AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah", AuthorRole: "teacher", Content: "Great question! The chain rule states that if you have a composite function f(g(x)), the derivative is f'(g(x)) * g'(x). In problem 15, you have sin(x²), so...", Timestamp: "2025-12-02T15:00:00"},
					{DiscussionID: "1", ID: "r2", Author: "Jane Smith", AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jane", AuthorRole: "student", Content: "I had the same question! This explanation really helped, thanks!", Timestamp: "2025-12-02T16:00:00"},
				},
			},
			{
				ID: "2", ClassID: "2", Title: "Study Group for Final Exam",
				Content:    "Anyone interested in forming a study group for the final exam? I was thinking we could meet on weekends.",
				Author:     "Mike Johnson", AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Mike",
				AuthorRole: "student", Timestamp: "2025-12-01T10:00:00",
				Replies: []model.DiscussionReply{},
			},
		},
		Resources: []model.Resource{
			{ID: "1", ClassID: "1", Title: "Calculus Reference Guide", Type: model.ResourcePDF, URL: "#", UploadedBy: "Dr. Sarah Johnson", UploadedAt: "2025-11-15T10:00:00", Category: "Study Materials"},
			{ID: "2", ClassID: "1", Title: "Integration Techniques Video Tutorial", Type: model.ResourceVideo, URL: "#", UploadedBy: "Dr. Sarah Johnson", UploadedAt: "2025-11-20T14:00:00", Category: "Video Lectures"},
			{ID: "3", ClassID: "2", Title: "Big O Notation Cheat Sheet", Type: model.ResourcePDF, URL: "#", UploadedBy: "Prof. Michael Chen", UploadedAt: "2025-11-18T09:00:00", Category: "Study Materials"},
			{ID: "4", ClassID: "2", Title: "Khan Academy - Data Structures", Type: model.ResourceLink, URL: "https://www.khanacademy.org", UploadedBy: "Prof. Michael Chen", UploadedAt: "2025-11-10T11:00:00", Category: "External Resources"},
		},
		Announcements: []model.Announcement{
			{ID: "1", ClassID: "1", Author: "Dr. Sarah Johnson", AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah", Content: "Welcome to Advanced Calculus! Please review the syllabus and let me know if you have any questions.", Timestamp: "2025-12-01T10:00:00"},
			{ID: "2", ClassID: "1", Author: "Dr. Sarah Johnson", AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah", Content: "Reminder: Office hours are Tuesday and Thursday 2-4 PM. Feel free to drop by with questions!", Timestamp: "2025-12-02T14:00:00"},
			{ID: "3", ClassID: "2", Author: "Prof. Michael Chen", AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Michael", Content: "Great job on the last assignment! Average score was 87%. Keep up the good work!", Timestamp: "2025-12-01T16:30:00"},
		},
		Students: []model.Student{
			{ID: "1", Name: "John Doe", Email: "john.doe@school.edu", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=John"},
			{ID: "2", Name: "Jane Smith", Email: "jane.smith@school.edu", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jane"},
			{ID: "3", Name: "Mike Johnson", Email: "mike.johnson@school.edu", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Mike"},
			{ID: "4", Name: "Emily Davis", Email: "emily.davis@school.edu", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Emily"},
			{ID: "5", Name: "Alex Brown", Email: "alex.brown@school.edu", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex"},
		},
		Submissions: []model.Submission{
			{ID: "1", AssignmentID: "1", StudentID: "1", StudentName: "John Doe", StudentAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=John", SubmittedAt: "2025-12-03T15:30:00", Content: "I have completed all 20 problems. Please find my work attached.", Grade: intPtr(95), Feedback: "Excellent work! Your explanations were clear and thorough."},
			{ID: "2", AssignmentID: "1", StudentID: "2", StudentName: "Jane Smith", StudentAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jane", SubmittedAt: "2025-12-03T18:45:00", Content: "Completed the problem set. Had some difficulty with problem 15."},
			{ID: "3", AssignmentID: "1", StudentID: "3", StudentName: "Mike Johnson", StudentAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Mike", SubmittedAt: "2025-12-03T20:15:00", Content: "All problems completed with detailed solutions.", Grade: intPtr(88), Feedback: "Good work overall. Review the chain rule application in problem 12."},
		},
		Attendance: []model.Attendance{
			{ID: "1", ClassID: "1", StudentID: "1", Date: "2025-12-01", Status: model.AttendancePresent},
			{ID: "2", ClassID: "1", StudentID: "2", Date: "2025-12-01", Status: model.AttendancePresent},
			{ID: "3", ClassID: "1", StudentID: "3", Date: "2025-12-01", Status: model.AttendanceLate},
			{ID: "4", ClassID: "1", StudentID: "1", Date: "2025-12-02", Status: model.AttendancePresent},
			{ID: "5", ClassID: "1", StudentID: "2", Date: "2025-12-02", Status: model.AttendanceAbsent},
		},
		Progress: []model.Progress{
			{StudentID: "1", ClassID: "1", CompletedAssignments: 8, TotalAssignments: 10, AverageGrade: 92, Attendance: 95, LastActive: "2025-12-03T15:30:00"},
			{StudentID: "2", ClassID: "1", CompletedAssignments: 7, TotalAssignments: 10, AverageGrade: 85, Attendance: 88, LastActive: "2025-12-03T14:20:00"},
		},
	}
}
