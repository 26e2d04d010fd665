// shopctl is a small operator CLI over the storefront client: sign in,
// browse the catalogs, manage the cart and wishlist, and start a checkout.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/client"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/config"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/session"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/store"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/storefront"
)

const usage = `usage: shopctl <command> [args]

  login <email>                     sign in (password read from terminal)
  logout                            discard the stored session
  whoami                            show the active session
  categories <grocery|alcohol>      list catalog categories
  items <grocery|alcohol> [catID]   list catalog items
  cart show                         show the cart
  cart add <domain> <itemID> [qty]  add an item to the cart
  cart inc|dec|rm <itemID>          change or remove a cart line
  cart clear                        empty the cart
  cart refresh                      resync the cart from the backend
  wish show                         show the wishlist
  wish toggle <domain> <itemID>     toggle a favorite
  wish refresh                      resync the wishlist from the backend
  orders                            list your orders
  checkout                          open a checkout session
`

type app struct {
	api      *client.Client
	sessions *session.Manager
	cart     *storefront.CartService
	cartSt   *store.Cart
	wish     *storefront.WishlistService
	wishSt   *store.Wishlist
	checkout *storefront.Checkout
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(os.Getenv("BENJOUR_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		if sessionPath, err = session.DefaultPath(); err != nil {
			log.Fatalf("resolve session path: %v", err)
		}
	}
	sessions, err := session.NewManager(session.NewFileStore(sessionPath))
	if err != nil {
		log.Fatalf("load session: %v", err)
	}

	api := client.New(cfg.BackendURL, sessions, nil)
	notifier := &notify.LogNotifier{Component: "shopctl"}
	cartStore := store.NewCart()
	wishStore := store.NewWishlist()

	a := &app{
		api:      api,
		sessions: sessions,
		cartSt:   cartStore,
		wishSt:   wishStore,
		cart:     storefront.NewCartService(cartStore, api, sessions, notifier),
		wish:     storefront.NewWishlistService(wishStore, api, sessions, notifier),
		checkout: storefront.NewCheckout(cartStore, api, sessions, notifier),
	}

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("shopctl: %v", err)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.sessions.Logout()
	case "whoami":
		s := a.sessions.Current()
		if !s.LoggedIn() {
			fmt.Println("not signed in")
			return nil
		}
		fmt.Printf("%s (role %s)\n", s.UserName, s.Role)
		return nil
	case "categories":
		return a.categories(ctx, args)
	case "items":
		return a.items(ctx, args)
	case "cart":
		return a.cartCmd(ctx, args)
	case "wish":
		return a.wishCmd(ctx, args)
	case "orders":
		return a.orders(ctx)
	case "checkout":
		return a.beginCheckout(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: shopctl login <email>")
	}

	fmt.Fprint(os.Stderr, "password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")

	result, err := a.api.Login(ctx, args[0], password)
	if err != nil {
		return err
	}
	if err := a.sessions.Login(session.Session{
		Token:    result.Token,
		Role:     result.Role,
		UserName: result.UserName,
	}); err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", result.UserName)
	return nil
}

func (a *app) categories(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: shopctl categories <grocery|alcohol>")
	}
	dom, err := domain.ParseStoreDomain(args[0])
	if err != nil {
		return err
	}

	categories, err := a.api.ListCategories(ctx, dom)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Printf("%6d  %s\n", c.ID, c.Name)
	}
	return nil
}

func (a *app) items(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: shopctl items <grocery|alcohol> [categoryID]")
	}
	dom, err := domain.ParseStoreDomain(args[0])
	if err != nil {
		return err
	}
	var categoryID int64
	if len(args) == 2 {
		if categoryID, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			return fmt.Errorf("invalid category id %q", args[1])
		}
	}

	items, err := a.api.ListItems(ctx, dom, categoryID)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("%6d  %-30s %8s  %s\n", item.ID, item.Name, item.Price.StringFixed(2), item.Category)
	}
	return nil
}

func (a *app) cartCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: shopctl cart <show|add|inc|dec|rm|clear|refresh>")
	}

	// The CLI is short-lived, so the in-memory cart starts empty; hydrate
	// it from the backend first.
	if err := a.cart.Refresh(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "show", "refresh":
		return a.printCart()
	case "add":
		if len(args) < 3 || len(args) > 4 {
			return fmt.Errorf("usage: shopctl cart add <domain> <itemID> [qty]")
		}
		dom, err := domain.ParseStoreDomain(args[1])
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[2])
		}
		quantity := 1
		if len(args) == 4 {
			if quantity, err = strconv.Atoi(args[3]); err != nil || quantity < 1 {
				return fmt.Errorf("invalid quantity %q", args[3])
			}
		}
		product, err := a.api.GetItem(ctx, dom, id)
		if err != nil {
			return err
		}
		if err := a.cart.Add(ctx, product.AsCartItem(quantity)); err != nil {
			return err
		}
		return a.printCart()
	case "inc", "dec", "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: shopctl cart %s <itemID>", args[0])
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[1])
		}
		switch args[0] {
		case "inc":
			err = a.cart.Increment(ctx, id)
		case "dec":
			err = a.cart.Decrement(ctx, id)
		case "rm":
			err = a.cart.Remove(ctx, id)
		}
		if err != nil {
			return err
		}
		return a.printCart()
	case "clear":
		return a.cart.Clear(ctx)
	default:
		return fmt.Errorf("unknown cart command %q", args[0])
	}
}

func (a *app) printCart() error {
	items := a.cartSt.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%6d  %-30s x%-3d %8s\n", item.ID, item.Name, item.Quantity, item.Subtotal().StringFixed(2))
	}
	fmt.Printf("total: %s\n", a.cartSt.Total().StringFixed(2))
	return nil
}

func (a *app) wishCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: shopctl wish <show|toggle|refresh>")
	}

	if err := a.wish.Refresh(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "show", "refresh":
		for _, item := range a.wishSt.Items() {
			fmt.Printf("%6d  %-30s %8s  %s\n", item.ID, item.Name, item.Price.StringFixed(2), item.Category)
		}
		return nil
	case "toggle":
		if len(args) != 3 {
			return fmt.Errorf("usage: shopctl wish toggle <domain> <itemID>")
		}
		dom, err := domain.ParseStoreDomain(args[1])
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[2])
		}
		product, err := a.api.GetItem(ctx, dom, id)
		if err != nil {
			return err
		}
		return a.wish.Toggle(ctx, product.AsWishlistItem())
	default:
		return fmt.Errorf("unknown wish command %q", args[0])
	}
}

func (a *app) orders(ctx context.Context) error {
	orders, err := a.api.ListMyOrders(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		fmt.Printf("%6d  %-16s %8s  %s\n", o.ID, o.Status, o.Total.StringFixed(2), o.PlacedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *app) beginCheckout(ctx context.Context) error {
	if err := a.cart.Refresh(ctx); err != nil {
		return err
	}
	cs, err := a.checkout.Begin(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("checkout session %s\nopen %s to pay\n", cs.ID, cs.URL)
	return nil
}
