package routes

import (
	"careconnect-backend/internal/handlers"
	"careconnect-backend/internal/middleware"
	"careconnect-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api")
	{
		// Grouping Auth
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// Route publik: orang boleh lihat daftar caregiver sebelum daftar
		api.GET("/caregivers", handlers.SearchCaregivers)
		api.GET("/caregivers/categorized", handlers.GetCategorizedCaregivers)
		api.GET("/caregivers/:id", handlers.GetCaregiver)

		// Webhook Midtrans (dipanggil server Midtrans, bukan user)
		api.POST("/payments/notification", handlers.HandleMidtransNotification)

		// 2. PROTECTED ROUTES (Harus Login / Punya Token)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware()) // <--- PASANG SATPAM DISINI
		{
			protected.GET("/profile", handlers.GetUserProfile)
			protected.PUT("/users/:id", handlers.UpdateUser)

			// Caregiver mengelola profil & jadwalnya sendiri
			protected.PUT("/caregivers/:id",
				middleware.RequireRole(models.RoleCaregiver), handlers.UpdateCaregiver)

			// MODULE CARE RECIPIENT (orang yang dirawat)
			client := protected.Group("/", middleware.RequireRole(models.RoleClient))
			{
				client.POST("/recipients", handlers.AddRecipient)
				client.GET("/recipients", handlers.GetMyRecipients)

				client.POST("/bookings", handlers.CreateBooking)
				client.GET("/bookings/my-bookings", handlers.GetMyBookings)
				client.POST("/bookings/:id/pay/card", handlers.PayWithCard)

				client.POST("/complaints", handlers.CreateComplaint)
				client.GET("/complaints/my-complaints", handlers.GetMyComplaints)
			}

			// MODULE BOOKING (akses campur, dicek di handler).
			// List semua booking nempel di /bookings biar konsisten dengan frontend,
			// jadi role admin dicek per-route di sini.
			protected.GET("/bookings",
				middleware.RequireRole(models.RoleAdmin), handlers.GetAllBookings)
			protected.GET("/bookings/:id", handlers.GetBookingDetail)
			protected.PUT("/bookings/:id/payment", handlers.UpdateBookingPayment)

			// MODULE KOMPLAIN sisi admin. Path admin-nya nyempil di bawah
			// /complaints (bukan /admin) mengikuti kontrak frontend.
			protected.GET("/complaints/admin/all",
				middleware.RequireRole(models.RoleAdmin), handlers.GetAllComplaints)
			protected.GET("/complaints/admin/stats",
				middleware.RequireRole(models.RoleAdmin), handlers.GetComplaintStats)
			protected.PUT("/complaints/:id",
				middleware.RequireRole(models.RoleAdmin), handlers.UpdateComplaint)

			// Group Khusus Caregiver
			caregiver := protected.Group("/", middleware.RequireRole(models.RoleCaregiver))
			{
				caregiver.GET("/bookings/jobs", handlers.GetMyJobs)
				caregiver.PUT("/bookings/:id/status", handlers.UpdateBookingStatus)

				caregiver.GET("/caregiver/wallet", handlers.GetMyWallet)
				caregiver.POST("/caregiver/wallet/withdraw", handlers.RequestWithdrawal)
			}

			// Group Khusus Admin
			admin := protected.Group("/admin", middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/stats", handlers.GetAdminStats)
				admin.GET("/users", handlers.GetAllClients)

				admin.GET("/caregivers/pending", handlers.GetPendingCaregivers)
				admin.PUT("/caregivers/:id/verify", handlers.VerifyCaregiver)

				admin.GET("/withdrawals", handlers.GetPendingWithdrawals)
				admin.PUT("/withdrawals/:id", handlers.SettleWithdrawal)
			}
		}
	}
}
