package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"pontualhq.com/pontual/security"
)

func main() {
	user := flag.String("user", "admin", "user name embedded in the token")
	email := flag.String("email", "", "email embedded in the token")
	ttl := flag.Int64("ttl", 3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("PONTUAL_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("PONTUAL_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.AdminIdentity{
		Id:       1,
		UserName: *user,
		Email:    *email,
	}, secret, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
