package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/orendahq/cusprod-backend/internal/cache"
	"github.com/orendahq/cusprod-backend/internal/controller"
	"github.com/orendahq/cusprod-backend/internal/db"
	"github.com/orendahq/cusprod-backend/internal/queue"
	"github.com/orendahq/cusprod-backend/internal/repository"
	"github.com/orendahq/cusprod-backend/internal/service"
	"github.com/orendahq/cusprod-backend/internal/telemetry"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	telemetry.InitLogger()

	// Init DB
	db.Init()

	// Optional backends degrade to local stand-ins.
	var listCache cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		listCache = cache.NewRedisCache(addr, "cusprod")
		log.Println("✅ Using redis cache at", addr)
	} else {
		listCache = cache.NewNoopCache()
	}

	var events queue.Queue
	if url := os.Getenv("AMQP_URL"); url != "" {
		amqpQueue, err := queue.NewAMQPQueue(url)
		if err != nil {
			log.Fatalf("failed to connect to AMQP broker: %v", err)
		}
		defer amqpQueue.Close()
		events = amqpQueue
		log.Println("✅ Publishing record events to RabbitMQ")
	} else {
		memQueue := queue.NewInMemoryQueue()
		queue.StartRecordEventLogger(memQueue)
		events = memQueue
	}

	customerRepo := &repository.CustomerRepository{DB: db.DB}
	productRepo := &repository.ProductRepository{DB: db.DB}
	orderRepo := &repository.OrderRepository{DB: db.DB}

	customerService := &service.CustomerService{
		CustomerRepo: customerRepo,
		OrderRepo:    orderRepo,
		Cache:        listCache,
		Queue:        events,
	}
	productService := &service.ProductService{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Cache:       listCache,
		Queue:       events,
	}
	orderService := &service.OrderService{
		OrderRepo:    orderRepo,
		CustomerRepo: customerRepo,
		ProductRepo:  productRepo,
		Cache:        listCache,
		Queue:        events,
	}

	customerController := &controller.CustomerController{CustomerService: customerService}
	productController := &controller.ProductController{ProductService: productService}
	orderController := &controller.OrderController{OrderService: orderService}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Welcome to the CusProd API"))
		})

		api.Route("/orders", func(rt chi.Router) {
			rt.Post("/create", orderController.CreateOrder)
			rt.Get("/", orderController.ListOrders)
			rt.Get("/{id}", orderController.GetOrder)
			rt.Put("/{id}", orderController.UpdateOrder)
			rt.Delete("/{id}", orderController.DeleteOrder)
		})

		api.Route("/customer", func(rt chi.Router) {
			rt.Post("/create", customerController.CreateCustomer)
			rt.Get("/", customerController.ListCustomers)
			rt.Get("/{id}", customerController.GetCustomer)
			rt.Put("/{id}", customerController.UpdateCustomer)
			rt.Delete("/{id}", customerController.DeleteCustomer)
		})

		api.Route("/products", func(rt chi.Router) {
			rt.Post("/create", productController.CreateProduct)
			rt.Get("/", productController.ListProducts)
			rt.Get("/{id}", productController.GetProduct)
			rt.Put("/{id}", productController.UpdateProduct)
			rt.Delete("/{id}", productController.DeleteProduct)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 CusProd API listening on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
