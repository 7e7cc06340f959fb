package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pfbms-server/src/handlers"
	"pfbms-server/src/middleware"
)

func NewRouter(pool *pgxpool.Pool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health(pool))

		r.Post("/auth/signup", handlers.Signup(pool))
		r.Post("/auth/login", handlers.Login(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(pool)).Group(func(r chi.Router) {
			r.Get("/auth/me", handlers.Me(pool))

			// Users
			r.Get("/users", handlers.GetAllUsers(pool))
			r.Post("/users", handlers.CreateUser(pool))
			r.Get("/users/{user_id}", handlers.GetUser(pool))
			r.Put("/users/{user_id}", handlers.UpdateUser(pool))
			r.Delete("/users/{user_id}", handlers.DeleteUser(pool))

			// Transactions
			r.Get("/transactions", handlers.GetAllTransactions(pool))
			r.Post("/transactions", handlers.CreateTransaction(pool))
			r.Get("/transactions/{transaction_id}", handlers.GetTransaction(pool))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(pool))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(pool))

			// Budgets
			r.Get("/budgets", handlers.GetAllBudgets(pool))
			r.Post("/budgets", handlers.CreateBudget(pool))
			r.Get("/budgets/{budget_id}", handlers.GetBudget(pool))
			r.Put("/budgets/{budget_id}", handlers.UpdateBudget(pool))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(pool))

			// Investments
			r.Get("/investments", handlers.GetAllInvestments(pool))
			r.Post("/investments", handlers.CreateInvestment(pool))
			r.Get("/investments/{investment_id}", handlers.GetInvestment(pool))
			r.Put("/investments/{investment_id}", handlers.UpdateInvestment(pool))
			r.Delete("/investments/{investment_id}", handlers.DeleteInvestment(pool))

			// Goals
			r.Get("/goals", handlers.GetAllGoals(pool))
			r.Post("/goals", handlers.CreateGoal(pool))
			r.Get("/goals/{goal_id}", handlers.GetGoal(pool))
			r.Put("/goals/{goal_id}", handlers.UpdateGoal(pool))
			r.Delete("/goals/{goal_id}", handlers.DeleteGoal(pool))

			// Reminders
			r.Get("/reminders", handlers.GetAllReminders(pool))
			r.Post("/reminders", handlers.CreateReminder(pool))
			r.Get("/reminders/{reminder_id}", handlers.GetReminder(pool))
			r.Put("/reminders/{reminder_id}", handlers.UpdateReminder(pool))
			r.Delete("/reminders/{reminder_id}", handlers.DeleteReminder(pool))

			// Preferences
			r.Get("/preferences/{user_id}", handlers.GetPreferences(pool))
			r.Post("/preferences/{user_id}", handlers.CreatePreferences(pool))
			r.Put("/preferences/{user_id}", handlers.UpdatePreferences(pool))

			// Notifications
			r.Get("/notifications", handlers.GetAllNotifications(pool))
			r.Post("/notifications", handlers.CreateNotification(pool))
			r.Put("/notifications/{notification_id}", handlers.UpdateNotification(pool))
			r.Delete("/notifications/{notification_id}", handlers.DeleteNotification(pool))

			// Reports
			r.Get("/reports", handlers.GetAllReports(pool))
			r.Post("/reports", handlers.CreateReport(pool))
			r.Get("/reports/{report_id}", handlers.GetReport(pool))
			r.Delete("/reports/{report_id}", handlers.DeleteReport(pool))

			// Dashboard
			r.Get("/dashboard/summary/{user_id}", handlers.DashboardSummary(pool))
		})
	})

	return r
}
