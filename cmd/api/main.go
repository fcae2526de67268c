package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/peopleops-ph/hrops-backend-go/internal/config"
	appHTTP "github.com/peopleops-ph/hrops-backend-go/internal/handler/http"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/cron"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/database"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/jwt"
	"github.com/peopleops-ph/hrops-backend-go/internal/repository/postgresql"
	authService "github.com/peopleops-ph/hrops-backend-go/internal/service/auth"
	leaveService "github.com/peopleops-ph/hrops-backend-go/internal/service/leave"
	payrollService "github.com/peopleops-ph/hrops-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Error loading organization timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	ledgerRepo := postgresql.NewLeaveLedgerRepository(db)
	lockRepo := postgresql.NewJobLockRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	authSvc := authService.NewAuthService(userRepo, jwtService)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(ledgerRepo, lockRepo, loc, cfg.Accrual.LockStaleAfter, logger)

	scheduler := cron.NewScheduler()
	cron.NewLeaveJobs(leaveSvc, loc, cfg.Accrual.RunHour).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		jwtService,
		authHandler,
		payrollHandler,
		leaveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
