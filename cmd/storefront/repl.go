package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"techstore/pkg/domain"
	"techstore/pkg/store"
)

// repl is the presentation layer: it reads from both stores and invokes
// their mutators, never touching state directly. Stock limits and input
// validation live here, not in the stores.
type repl struct {
	sessions *store.SessionStore
	catalog  *store.CatalogStore
	delay    time.Duration

	in  *bufio.Scanner
	out io.Writer

	cartCount int
}

func newREPL(sessions *store.SessionStore, catalog *store.CatalogStore, delay time.Duration) *repl {
	return &repl{
		sessions: sessions,
		catalog:  catalog,
		delay:    delay,
	}
}

func (r *repl) run(ctx context.Context, in io.Reader, out io.Writer) {
	r.in = bufio.NewScanner(in)
	r.out = out

	// Keep the prompt badge in sync with the cart.
	refresh := func() {
		count := 0
		for _, line := range r.catalog.Cart() {
			count += line.Quantity
		}
		r.cartCount = count
	}
	refresh()
	cancel := r.catalog.Subscribe(refresh)
	defer cancel()

	fmt.Fprintln(out, "TechStore — type 'help' for commands.")
	for {
		if user, ok := r.sessions.Current(); ok {
			fmt.Fprintf(out, "%s [%d]> ", user.Name, r.cartCount)
		} else {
			fmt.Fprintf(out, "guest [%d]> ", r.cartCount)
		}
		line, ok := r.readLine(ctx)
		if !ok {
			fmt.Fprintln(out, "bye")
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			fmt.Fprintln(out, "bye")
			return
		}
		r.dispatch(ctx, fields[0], fields[1:])
	}
}

func (r *repl) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		r.printHelp()
	case "categories":
		r.printCategories()
	case "products":
		r.printProducts(args)
	case "product":
		r.printProduct(args)
	case "add":
		r.addToCart(args)
	case "cart":
		r.printCart()
	case "update":
		r.updateCart(args)
	case "remove":
		r.removeFromCart(args)
	case "clear":
		r.catalog.ClearCart()
		fmt.Fprintln(r.out, "cart cleared")
	case "checkout":
		r.checkout(ctx)
	case "orders":
		r.printOrders()
	case "login":
		r.login()
	case "register":
		r.register()
	case "logout":
		r.sessions.Logout()
		fmt.Fprintln(r.out, "signed out")
	case "whoami":
		r.whoami()
	case "admin":
		r.admin(args)
	default:
		fmt.Fprintf(r.out, "unknown command %q, try 'help'\n", cmd)
	}
}

func (r *repl) printHelp() {
	fmt.Fprint(r.out, `browse:
  categories               list categories
  products [categoryID]    list products, optionally by category
  product <id>             product details
cart:
  add <id> [qty]           add product to cart
  cart                     show cart and totals
  update <id> <qty>        set line quantity (0 removes)
  remove <id>              remove a line
  clear                    empty the cart
  checkout                 place the order
account:
  login | register | logout | whoami
  orders                   your order history
admin:
  admin add-category | admin add-product
quit
`)
}

func (r *repl) printCategories() {
	for _, c := range r.catalog.Categories() {
		fmt.Fprintf(r.out, "%-4s %-14s %s\n", c.ID, c.Name, c.Description)
	}
}

func (r *repl) printProducts(args []string) {
	products := r.catalog.Products()
	if len(args) > 0 {
		products = r.catalog.ProductsByCategory(args[0])
	}
	if len(products) == 0 {
		fmt.Fprintln(r.out, "no products")
		return
	}
	for _, p := range products {
		fmt.Fprintf(r.out, "%-4s %-40s $%-9.2f stock %d\n", p.ID, p.Name, p.Price, p.Stock)
	}
}

func (r *repl) printProduct(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "usage: product <id>")
		return
	}
	p, ok := r.catalog.Product(args[0])
	if !ok {
		fmt.Fprintln(r.out, "product not found")
		return
	}
	fmt.Fprintf(r.out, "%s — $%.2f (stock %d)\n%s\n", p.Name, p.Price, p.Stock, p.Description)
	for k, v := range p.Specifications {
		fmt.Fprintf(r.out, "  %s: %s\n", k, v)
	}
}

func (r *repl) addToCart(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "usage: add <id> [qty]")
		return
	}
	p, ok := r.catalog.Product(args[0])
	if !ok {
		fmt.Fprintln(r.out, "product not found")
		return
	}
	qty := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Fprintln(r.out, "quantity must be a positive number")
			return
		}
		qty = n
	}
	// Stock limit is enforced at this layer, mirroring the disabled
	// quantity controls of the storefront views.
	inCart := 0
	for _, line := range r.catalog.Cart() {
		if line.ProductID == p.ID {
			inCart = line.Quantity
		}
	}
	if inCart+qty > p.Stock {
		fmt.Fprintf(r.out, "only %d in stock (%d already in cart)\n", p.Stock, inCart)
		return
	}
	r.catalog.AddToCart(p.ID, qty)
	fmt.Fprintf(r.out, "added %d × %s\n", qty, p.Name)
}

func (r *repl) updateCart(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "usage: update <id> <qty>")
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(r.out, "quantity must be a number")
		return
	}
	if p, ok := r.catalog.Product(args[0]); ok && qty > p.Stock {
		fmt.Fprintf(r.out, "only %d in stock\n", p.Stock)
		return
	}
	r.catalog.UpdateCartQuantity(args[0], qty)
	fmt.Fprintln(r.out, "cart updated")
}

func (r *repl) removeFromCart(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(r.out, "usage: remove <id>")
		return
	}
	r.catalog.RemoveFromCart(args[0])
	fmt.Fprintln(r.out, "removed")
}

func (r *repl) printCart() {
	cart := r.catalog.Cart()
	if len(cart) == 0 {
		fmt.Fprintln(r.out, "your cart is empty")
		return
	}
	for _, line := range cart {
		p, ok := r.catalog.Product(line.ProductID)
		if !ok {
			// A line whose product vanished is shown nowhere.
			continue
		}
		fmt.Fprintf(r.out, "%-4s %-40s %d × $%.2f = $%.2f\n",
			p.ID, p.Name, line.Quantity, p.Price, p.Price*float64(line.Quantity))
	}
	r.printTotals(r.catalog.CartTotals())
}

func (r *repl) printTotals(t store.Totals) {
	fmt.Fprintf(r.out, "subtotal $%.2f\n", t.Subtotal)
	if t.Shipping == 0 {
		fmt.Fprintln(r.out, "shipping free")
	} else {
		fmt.Fprintf(r.out, "shipping $%.2f\n", t.Shipping)
	}
	fmt.Fprintf(r.out, "tax      $%.2f\n", t.Tax)
	fmt.Fprintf(r.out, "total    $%.2f\n", t.Total)
}

func (r *repl) checkout(ctx context.Context) {
	user, signedIn := r.sessions.Current()
	if !signedIn {
		fmt.Fprintln(r.out, "please login (or register) before checking out")
		return
	}
	if len(r.catalog.Cart()) == 0 {
		fmt.Fprintln(r.out, "your cart is empty")
		return
	}

	addr := domain.Address{
		Name:    r.prompt(ctx, "full name", user.Name),
		Street:  r.prompt(ctx, "street address", ""),
		City:    r.prompt(ctx, "city", ""),
		ZipCode: r.prompt(ctx, "zip code", ""),
		Country: r.prompt(ctx, "country", ""),
	}
	r.printTotals(r.catalog.CartTotals())

	// Simulated processing latency. If the process is torn down during
	// the wait the order is never placed.
	fmt.Fprintln(r.out, "processing...")
	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
		fmt.Fprintln(r.out, "checkout interrupted, order not placed")
		return
	}

	order, ok := r.catalog.PlaceOrder(user.ID, addr)
	if !ok {
		fmt.Fprintln(r.out, "your cart is empty")
		return
	}
	fmt.Fprintf(r.out, "order %s placed — status %s, total $%.2f\n", order.ID, order.Status, order.Total)
}

func (r *repl) printOrders() {
	user, ok := r.sessions.Current()
	if !ok {
		fmt.Fprintln(r.out, "please login to see your orders")
		return
	}
	orders := r.catalog.OrdersForUser(user.ID)
	if len(orders) == 0 {
		fmt.Fprintln(r.out, "no orders yet")
		return
	}
	for _, o := range orders {
		fmt.Fprintf(r.out, "%s  %s  %-10s  $%.2f  %d item(s)\n",
			o.ID, o.CreatedAt.Format("2006-01-02"), o.Status, o.Total, len(o.Items))
	}
}

func (r *repl) login() {
	ctx := context.Background()
	email := r.prompt(ctx, "email", "")
	password := r.prompt(ctx, "password", "")
	if r.sessions.Login(email, password) {
		user, _ := r.sessions.Current()
		fmt.Fprintf(r.out, "welcome back, %s\n", user.Name)
		return
	}
	fmt.Fprintln(r.out, "invalid email or password")
}

func (r *repl) register() {
	ctx := context.Background()
	name := r.prompt(ctx, "name", "")
	if len(strings.TrimSpace(name)) < 2 {
		fmt.Fprintln(r.out, "name must be at least 2 characters")
		return
	}
	email := r.prompt(ctx, "email", "")
	password := r.prompt(ctx, "password", "")
	if r.sessions.Register(email, password, name) {
		fmt.Fprintf(r.out, "welcome, %s\n", name)
		return
	}
	fmt.Fprintln(r.out, "an account with that email already exists")
}

func (r *repl) whoami() {
	user, ok := r.sessions.Current()
	if !ok {
		fmt.Fprintln(r.out, "not signed in")
		return
	}
	fmt.Fprintf(r.out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
}

func (r *repl) admin(args []string) {
	user, ok := r.sessions.Current()
	if !ok || user.Role != domain.RoleAdmin {
		fmt.Fprintln(r.out, "admin access required")
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(r.out, "usage: admin add-category | admin add-product")
		return
	}
	ctx := context.Background()
	switch args[0] {
	case "add-category":
		c := r.catalog.AddCategory(domain.Category{
			Name:        r.prompt(ctx, "name", ""),
			Description: r.prompt(ctx, "description", ""),
		})
		fmt.Fprintf(r.out, "category %s created\n", c.ID)
	case "add-product":
		name := r.prompt(ctx, "name", "")
		description := r.prompt(ctx, "description", "")
		price, _ := strconv.ParseFloat(r.prompt(ctx, "price", "0"), 64)
		categoryID := r.prompt(ctx, "category id", "")
		image := r.prompt(ctx, "image url", "")
		stock, _ := strconv.Atoi(r.prompt(ctx, "stock", "0"))
		p := r.catalog.AddProduct(domain.Product{
			Name:        name,
			Description: description,
			Price:       price,
			CategoryID:  categoryID,
			Image:       image,
			Stock:       stock,
		})
		fmt.Fprintf(r.out, "product %s created\n", p.ID)
	default:
		fmt.Fprintf(r.out, "unknown admin command %q\n", args[0])
	}
}

func (r *repl) prompt(ctx context.Context, label, fallback string) string {
	if fallback != "" {
		fmt.Fprintf(r.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(r.out, "%s: ", label)
	}
	line, ok := r.readLine(ctx)
	if !ok {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

func (r *repl) readLine(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}
