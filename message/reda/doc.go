package reda
