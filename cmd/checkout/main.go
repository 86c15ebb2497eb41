package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	qrcode "github.com/skip2/go-qrcode"

	"pix-checkout-api/checkout"
)

// Cliente de checkout para a linha de comando: coleta os dados,
// submete ao relay e exibe o QR code PIX com contagem regressiva até a
// expiração.
func main() {
	relayURL := flag.String("relay", envOr("RELAY_URL", "http://localhost:8080"), "URL base do relay")
	amount := flag.Float64("amount", 28.63, "valor da taxa em reais")
	name := flag.String("name", "", "nome completo")
	email := flag.String("email", "", "e-mail")
	cpf := flag.String("cpf", "", "CPF ou CNPJ (com ou sem máscara)")
	phone := flag.String("phone", "", "celular (com ou sem máscara)")
	cep := flag.String("cep", "", "CEP (opcional)")
	copyCode := flag.Bool("copy", true, "copiar o código PIX para a área de transferência")
	flag.Parse()

	if *name == "" || *email == "" || *cpf == "" || *phone == "" {
		fmt.Fprintln(os.Stderr, "uso: checkout -name ... -email ... -cpf ... -phone ...")
		os.Exit(2)
	}

	session := checkout.NewSession(checkout.NewRelayClient(*relayURL), *amount)
	session.SetInput(checkout.FormData{
		Name:          *name,
		Email:         *email,
		CPF:           *cpf,
		Phone:         *phone,
		CEP:           *cep,
		PaymentMethod: "pix",
	})

	fmt.Printf("Processando pagamento de R$ %.2f...\n", *amount)

	if err := session.Submit(context.Background()); err != nil {
		log.Fatalf("Failed to submit checkout: %v", err)
	}

	switch session.State() {
	case checkout.StatePixReady:
		showPix(session, *copyCode)
	case checkout.StateGenericSuccess:
		fmt.Println("Pagamento processado com sucesso! Você receberá um e-mail com os detalhes.")
	case checkout.StateError:
		fmt.Fprintln(os.Stderr, session.Notice())
		session.AcknowledgeError()
		os.Exit(1)
	}
}

func showPix(session *checkout.Session, copyCode bool) {
	pix := session.Pix()

	fmt.Println("\nPIX gerado com sucesso!")
	fmt.Println("Escaneie o QR Code abaixo para realizar o pagamento:")

	if art, err := qrcode.New(session.PixCode(), qrcode.High); err != nil {
		log.Printf("Failed to render QR code: %v", err)
	} else {
		fmt.Println(art.ToSmallString(false))
	}

	fmt.Printf("Valor a pagar: R$ %s\n", formatAmount(pix.Amount))
	fmt.Printf("Código PIX (copia e cola): %s\n", session.DisplayCode())

	if copyCode {
		// Sempre o código completo, nunca o recorte exibido
		if err := clipboard.WriteAll(session.PixCode()); err != nil {
			log.Printf("Failed to copy PIX code to clipboard: %v", err)
		} else {
			fmt.Println("Código PIX copiado!")
		}
	}

	expiration, err := checkout.ParseExpiration(pix.ExpirationDate)
	if err != nil {
		log.Printf("Invalid expiration date %q: %v", pix.ExpirationDate, err)
		return
	}

	countdown := checkout.StartCountdown(expiration, checkout.TickInterval, func(state checkout.CountdownState) {
		fmt.Printf("Expira em: %s\n", state.RemainingLabel)
	})
	defer countdown.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	fmt.Println("\nEncerrando.")
}

func formatAmount(amount float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", amount), ".", ",", 1)
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
