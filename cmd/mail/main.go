package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/config"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

func main() {
	/**********************************************
	 * crear el logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * cargar la configuración
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no fue posible cargar la configuración", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * crear el cliente de correo
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("no fue posible crear el cliente de correo", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("no fue posible conectar al servidor de correo", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * conectar a rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("no fue posible conectar a rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("no fue posible abrir el canal", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"cola_correos",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no fue posible declarar la cola", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no fue posible consumir la cola", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("mensaje recibido", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("no fue posible deserializar el mensaje", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				correo := mail.NewMsg()
				if err := correo.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("no fue posible asignar el remitente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := correo.To(mailMessage.To); err != nil {
					logger.Error("no fue posible asignar el destinatario", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case "nueva_cuenta":
					tmpl, err := template.ParseFiles("./templates/nueva_cuenta_email.html")
					if err != nil {
						logger.Error("no fue posible leer la plantilla del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := correo.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("no fue posible armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					correo.Subject("SIGRH - Datos de su cuenta")
				case "carga_masiva":
					tmpl, err := template.ParseFiles("./templates/resumen_carga_email.html")
					if err != nil {
						logger.Error("no fue posible leer la plantilla del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := correo.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("no fue posible armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					correo.Subject("SIGRH - Resumen de la carga de horarios")
				default:
					logger.Error("tipo de correo no soportado", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(correo); err != nil {
					logger.Error("falló el envío del correo", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // se reencola para reintentarlo
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("esperando mensajes... (CTRL+C para salir)")
	<-sigChan

	slog.Info("apagando el worker de correo...")
	cancel()
	wg.Wait()
	slog.Info("worker de correo apagado correctamente")
}
