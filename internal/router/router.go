package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/middleware"
	"github.com/wb-go/wbf/ginext"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Handler interface {
	// Tours
	AliasTopTours(c *ginext.Context)
	GetAllTours(c *ginext.Context)
	GetTour(c *ginext.Context)
	CreateTour(c *ginext.Context)
	UpdateTour(c *ginext.Context)
	DeleteTour(c *ginext.Context)
	UploadTourImages(c *ginext.Context)
	GetTourStats(c *ginext.Context)
	GetMonthlyPlan(c *ginext.Context)
	GetToursWithin(c *ginext.Context)
	GetDistances(c *ginext.Context)

	// Users
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	ForgotPassword(c *ginext.Context)
	ResetPassword(c *ginext.Context)
	UpdateMyPassword(c *ginext.Context)
	GetMe(c *ginext.Context)
	UpdateMe(c *ginext.Context)
	DeleteMe(c *ginext.Context)
	GetAllUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	CreateUser(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)

	// Reviews
	GetAllReviews(c *ginext.Context)
	GetReview(c *ginext.Context)
	CreateReview(c *ginext.Context)
	UpdateReview(c *ginext.Context)
	DeleteReview(c *ginext.Context)

	// Bookings
	GetCheckoutSession(c *ginext.Context)
	GetMyBookings(c *ginext.Context)
	GetInvoice(c *ginext.Context)
	GetAllBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)

	// Views
	Overview(c *ginext.Context)
	TourPage(c *ginext.Context)
	LoginPage(c *ginext.Context)
	AccountPage(c *ginext.Context)
	MyToursPage(c *ginext.Context)
	SubmitUserData(c *ginext.Context)
}

type Options struct {
	Mode string
	// Auth resolves tokens for the protect and isLoggedIn middleware.
	Auth middleware.Authenticator
	// CORS is mounted on the engine so preflights are answered before route matching.
	CORS ginext.HandlerFunc
	// API runs in front of every /api route, after the global middleware.
	API []ginext.HandlerFunc

	TemplatesGlob string
	StaticDir     string
}

func InitRouter(opts Options, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(opts.Mode)
	router.Use(mw...)
	if opts.CORS != nil {
		router.Use(opts.CORS)
	}

	protect := middleware.Protect(opts.Auth)
	isLoggedIn := middleware.IsLoggedIn(opts.Auth)
	restrictTo := middleware.RestrictTo

	staff := []domain.Role{domain.RoleAdmin, domain.RoleLeadGuide}

	api := router.Group("/api/v1", opts.API...)
	{
		tours := api.Group("/tours")
		tours.GET("/top-5-cheap", h.AliasTopTours, h.GetAllTours)
		tours.GET("/tour-stats", h.GetTourStats)
		tours.GET("/monthly-plan/:year", protect,
			restrictTo(domain.RoleAdmin, domain.RoleLeadGuide, domain.RoleGuide), h.GetMonthlyPlan)
		tours.GET("/tours-within/:distance/center/:latlng/unit/:unit", h.GetToursWithin)
		tours.GET("/distances/:latlng/unit/:unit", h.GetDistances)
		tours.GET("", h.GetAllTours)
		tours.GET("/:id", h.GetTour)

		tourStaff := tours.Group("", protect, restrictTo(staff...))
		tourStaff.POST("", h.CreateTour)
		tourStaff.PATCH("/:id", h.UpdateTour)
		tourStaff.PATCH("/:id/images", h.UploadTourImages)
		tourStaff.DELETE("/:id", h.DeleteTour)

		// nested reviews: /tours/:id/reviews
		tours.GET("/:id/reviews", protect, h.GetAllReviews)
		tours.POST("/:id/reviews", protect, restrictTo(domain.RoleUser), h.CreateReview)

		users := api.Group("/users")
		users.POST("/signup", h.Signup)
		users.POST("/login", h.Login)
		users.GET("/logout", h.Logout)
		users.POST("/forgotPassword", h.ForgotPassword)
		users.PATCH("/resetPassword/:token", h.ResetPassword)

		self := users.Group("", protect)
		self.PATCH("/updateMyPassword", h.UpdateMyPassword)
		self.GET("/me", h.GetMe)
		self.PATCH("/updateMe", h.UpdateMe)
		self.DELETE("/deleteMe", h.DeleteMe)

		admin := users.Group("", protect, restrictTo(domain.RoleAdmin))
		admin.GET("", h.GetAllUsers)
		admin.POST("", h.CreateUser)
		admin.GET("/:id", h.GetUser)
		admin.PATCH("/:id", h.UpdateUser)
		admin.DELETE("/:id", h.DeleteUser)

		reviews := api.Group("/reviews", protect)
		reviews.GET("", h.GetAllReviews)
		reviews.POST("", restrictTo(domain.RoleUser), h.CreateReview)
		reviews.GET("/:id", h.GetReview)
		reviews.PATCH("/:id", restrictTo(domain.RoleUser, domain.RoleAdmin), h.UpdateReview)
		reviews.DELETE("/:id", restrictTo(domain.RoleUser, domain.RoleAdmin), h.DeleteReview)

		bookings := api.Group("/bookings", protect)
		bookings.GET("/checkout-session/:tourId", h.GetCheckoutSession)
		bookings.GET("/me", h.GetMyBookings)
		bookings.GET("/:id/invoice", h.GetInvoice)

		bookingStaff := bookings.Group("", restrictTo(staff...))
		bookingStaff.GET("", h.GetAllBookings)
		bookingStaff.POST("", h.CreateBooking)
		bookingStaff.GET("/:id", h.GetBooking)
		bookingStaff.PATCH("/:id", h.UpdateBooking)
		bookingStaff.DELETE("/:id", h.DeleteBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if opts.TemplatesGlob != "" {
		router.SetFuncMap(TemplateFuncs())
		router.LoadHTMLGlob(opts.TemplatesGlob)
	}
	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}

	router.GET("/", isLoggedIn, h.Overview)
	router.GET("/tour/:slug", isLoggedIn, h.TourPage)
	router.GET("/login", isLoggedIn, h.LoginPage)
	router.GET("/me", protect, h.AccountPage)
	router.GET("/my-tours", protect, h.MyToursPage)
	router.POST("/submit-user-data", protect, h.SubmitUserData)

	router.NoRoute(func(c *ginext.Context) {
		_ = c.Error(&domain.RouteNotFoundError{URL: c.Request.URL.RequestURI()})
		c.Abort()
	})

	return router
}

// TemplateFuncs are the helpers available to the server-rendered views.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"title":     titleCase,
		"monthYear": func(t time.Time) string { return t.Format("January 2006") },
		"roleLabel": func(role domain.Role) string {
			switch role {
			case domain.RoleLeadGuide:
				return "Lead guide"
			case domain.RoleGuide:
				return "Tour guide"
			}
			return titleCase(string(role))
		},
		"stars": func(rating int) []bool {
			out := make([]bool, 5)
			for i := range out {
				out[i] = i < rating
			}
			return out
		},
	}
}

// titleCase builds a fresh Caser per call; Casers are stateful.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
