// Command hashpw prints the bcrypt hash to store in employees.password.
// The password is read from the first line of stdin.
//
//	echo -n 's3cret' | go run ./cmd/hashpw
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bikeworks/assembly-tracker/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Level: "warn", Pretty: true, Service: "hashpw", Output: os.Stderr})

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatal().Err(err).Msg("read password from stdin")
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		log.Fatal().Msg("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}
	fmt.Println(string(hash))
}
