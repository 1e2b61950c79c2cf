// Command ppay is an operator CLI for the ProtectedPay contract
package main

func main() {
	Execute()
}
