// lobbyctl is a read/render client of the gateway: it polls the room list
// (or one room's members) and prints it as a table. It owns no state about
// room membership, every refresh is a fresh snapshot from the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"meet-lab/domain"
)

func main() {
	addr := flag.String("addr", "http://localhost:8765", "Gateway base URL")
	room := flag.String("room", "", "List members of this room instead of the room list")
	watch := flag.Duration("watch", 0, "Refresh interval (0 = print once)")
	flag.Parse()

	for {
		if err := render(*addr, *room); err != nil {
			log.Fatal("Error while querying gateway: ", err)
		}
		if *watch <= 0 {
			return
		}
		time.Sleep(*watch)
	}
}

func render(addr, room string) error {
	if room != "" {
		users, err := fetchUsers(addr, room)
		if err != nil {
			return err
		}
		color.New(color.BgBlack, color.FgGreen).Printf("Room %s – %d user(s)\n", room, len(users))
		printTable([]string{"User"}, usersRows(users))
		return nil
	}

	rooms, err := fetchRooms(addr)
	if err != nil {
		return err
	}
	color.New(color.BgBlack, color.FgGreen).Printf("Lobby – %d room(s)\n", len(rooms))
	printTable([]string{"Room", "Users"}, roomRows(rooms))
	return nil
}

func fetchRooms(addr string) ([]domain.RoomInfo, error) {
	resp, err := http.Get(addr + "/rooms")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var rooms []domain.RoomInfo
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func fetchUsers(addr, room string) ([]string, error) {
	resp, err := http.Get(addr + "/users?room=" + room)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned %s", resp.Status)
	}

	var users []string
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func roomRows(rooms []domain.RoomInfo) [][]string {
	rows := make([][]string, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, []string{room.Name, strconv.Itoa(room.Users)})
	}
	return rows
}

func usersRows(users []string) [][]string {
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, []string{user})
	}
	return rows
}

func printTable(header []string, rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}
